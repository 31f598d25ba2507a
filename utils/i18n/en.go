package i18n

var en = map[string]string{
	"site.name":        "Bricks Capital",
	"site.description": "Real estate investment fund manager",

	"nav.home":     "Home",
	"nav.about":    "About",
	"nav.funds":    "Funds",
	"nav.contact":  "Contact",
	"nav.portal":   "Investor Portal",
	"nav.cta":      "Invest now",
	"nav.language": "Español",

	"footer.tagline": "Real estate investing with a guaranteed minimum return.",
	"footer.company": "Company",
	"footer.legal":   "Legal",
	"footer.privacy": "Privacy policy",
	"footer.terms":   "Legal notice",
	"footer.cookies": "Cookie policy",
	"footer.address": "Paseo de la Castellana 89, 28046 Madrid",
	"footer.rights":  "All rights reserved.",
	"footer.warning": "Past performance does not guarantee future returns.",

	"home.hero.title":           "Building wealth brick by brick",
	"home.hero.subtitle":        "Real estate funds with a 7% minimum annual return",
	"home.hero.description":     "Invest in residential, commercial and logistics assets selected by a team with over 15 years of experience.",
	"home.hero.cta":             "Discover our funds",
	"home.hero.secondary":       "Calculate your returns",
	"home.stats.aum":            "Assets under management",
	"home.stats.aumValue":       "€250M",
	"home.stats.investors":      "Investors",
	"home.stats.investorsValue": "1,200+",
	"home.stats.years":          "Years of experience",
	"home.stats.yearsValue":     "15",
	"home.stats.return":         "Average annual return",
	"home.stats.returnValue":    "11.2%",
	"home.funds.title":          "Our funds",
	"home.funds.subtitle":       "Two strategies, one commitment: protect and grow your capital.",
	"home.funds.one":            "10-year diversification with 7% to 15% annual returns.",
	"home.funds.seven":          "7-year stable income with 7% to 10% annual returns.",
	"home.funds.more":           "View details",
	"home.why.title":            "Why Bricks Capital?",
	"home.why.1.title":          "Minimum return",
	"home.why.1.text":           "At least 7% per year in both funds, paid out every year.",
	"home.why.2.title":          "Real assets",
	"home.why.2.text":           "Your investment backed by tangible properties in prime locations.",
	"home.why.3.title":          "Full transparency",
	"home.why.3.text":           "Quarterly reports and online access to your portfolio.",
	"home.calculator.title":     "Simulate your investment",

	"about.hero.title":     "About us",
	"about.hero.subtitle":  "An independent manager specialised in real estate investment",
	"about.mission.title":  "Our mission",
	"about.mission.text":   "Bringing professional real estate investment to private and institutional investors with full transparency.",
	"about.values.title":   "Our values",
	"about.values.1.title": "Prudence",
	"about.values.1.text":  "Every asset goes through rigorous analysis before joining the portfolio.",
	"about.values.2.title": "Commitment",
	"about.values.2.text":  "We invest our own capital alongside our investors.",
	"about.values.3.title": "Closeness",
	"about.values.3.text":  "An investor relations team that is always available.",
	"about.team.title":     "Our team",
	"about.team.text":      "Professionals from investment banking, development and asset management.",
	"about.cta":            "Talk to us",

	"funds.hero.title":                "Our funds",
	"funds.hero.subtitle":             "Choose the strategy that best fits your goals",
	"funds.hero.description":          "Both funds guarantee a minimum annual return of 7%.",
	"funds.comparison.title":          "Fund comparison",
	"funds.comparison.feature":        "Feature",
	"funds.comparison.duration":       "Duration",
	"funds.comparison.duration1":      "10 years",
	"funds.comparison.duration2":      "7 years",
	"funds.comparison.minReturn":      "Minimum return",
	"funds.comparison.minReturn1":     "7% annual",
	"funds.comparison.minReturn2":     "7% annual",
	"funds.comparison.maxReturn":      "Maximum return",
	"funds.comparison.maxReturn1":     "15% annual",
	"funds.comparison.maxReturn2":     "10% annual",
	"funds.comparison.minInvestment":  "Minimum investment",
	"funds.comparison.minInvestment1": "€25,000",
	"funds.comparison.minInvestment2": "€10,000",
	"funds.comparison.liquidity":      "Liquidity",
	"funds.comparison.liquidity1":     "Yearly, from year 5",
	"funds.comparison.liquidity2":     "Yearly, from year 3",
	"funds.comparison.risk":           "Risk profile",
	"funds.comparison.risk1":          "Moderate",
	"funds.comparison.risk2":          "Conservative",
	"funds.comparison.idealFor":       "Ideal for",
	"funds.comparison.idealFor1":      "Long-term growth",
	"funds.comparison.idealFor2":      "Stable income",
	"funds.one.tagline":               "Diversified long-term growth",
	"funds.one.description":           "Bricks One invests in a diversified portfolio of residential, commercial, logistics and hotel assets.",
	"funds.seven.tagline":             "Stable medium-term income",
	"funds.seven.description":         "Bricks Seven focuses on rented residential assets with recurring income.",
	"funds.performance":               "Historical returns",
	"funds.performance.year":          "Year",
	"funds.performance.return":        "Return",
	"funds.performance.average":       "Average",

	"calculator.title":             "ROI calculator",
	"calculator.subtitle":          "Estimate the performance of your investment",
	"calculator.fund":              "Fund",
	"calculator.amount":            "Amount to invest",
	"calculator.years":             "Investment term",
	"calculator.years_plural":      "years",
	"calculator.calculate":         "Calculate",
	"calculator.results":           "Results",
	"calculator.initialInvestment": "Initial investment",
	"calculator.guaranteedReturn":  "Guaranteed return (7%)",
	"calculator.potentialReturn":   "Potential return",
	"calculator.earnings":          "Earnings",
	"calculator.perYear":           "/year",
	"calculator.note":              "Simple interest: returns are paid out every year and not reinvested. Figures are indicative.",
	"calculator.empty":             "Fill in the details and calculate your returns",
	"calculator.bricksOne":         "Bricks One (7-15%, up to 10 years)",
	"calculator.bricksSeven":       "Bricks Seven (7-10%, up to 7 years)",
	"calculator.error.years":       "This term is not available for the selected fund",
	"calculator.error.fund":        "Select a valid fund",

	"contact.hero.title":                 "Contact",
	"contact.hero.subtitle":              "We are here to help",
	"contact.hero.description":           "Tell us about your goals and an advisor will get in touch.",
	"contact.form.title":                 "Send us a message",
	"contact.form.name":                  "Full name",
	"contact.form.email":                 "Email",
	"contact.form.phone":                 "Phone",
	"contact.form.fund":                  "Fund of interest",
	"contact.form.fundPlaceholder":       "Select a fund",
	"contact.form.bothFunds":             "Both funds",
	"contact.form.investmentAmount":      "Estimated amount",
	"contact.form.investmentPlaceholder": "Select a range",
	"contact.form.subject":               "Subject",
	"contact.form.subjectPlaceholder":    "How can we help you?",
	"contact.form.message":               "Message",
	"contact.form.consent":               "I accept the privacy policy and the processing of my data.",
	"contact.form.submit":                "Send message",
	"contact.form.success":               "Message sent! We'll contact you soon.",
	"contact.form.error.consent":         "You must accept the privacy policy",
	"contact.form.error.invalid":         "Please check the required fields: name, email and message.",
	"contact.form.error.rateLimited":     "Too many submissions. Please try again in a few minutes.",
	"contact.form.error.internal":        "We could not send your message. Please try again.",
	"contact.ranges.range1":              "€10,000 - €25,000",
	"contact.ranges.range2":              "€25,000 - €50,000",
	"contact.ranges.range3":              "€50,000 - €100,000",
	"contact.ranges.range4":              "€100,000 - €250,000",
	"contact.ranges.range5":              "More than €250,000",
	"contact.direct.title":               "Direct contact",
	"contact.direct.general":             "General enquiries",
	"contact.direct.generalEmail":        "info@brickscapital.es",
	"contact.direct.investors":           "Investor relations",
	"contact.direct.investorsEmail":      "inversores@brickscapital.es",
	"contact.direct.investorsPhone":      "+34 910 123 456",
	"contact.direct.press":               "Press",
	"contact.direct.pressEmail":          "prensa@brickscapital.es",
	"contact.schedule.title":             "Opening hours",
	"contact.schedule.weekdays":          "Monday to Friday",
	"contact.schedule.weekdaysTime":      "9:00 - 19:00",
	"contact.schedule.weekends":          "Weekends",
	"contact.schedule.weekendsTime":      "Closed",
	"contact.offices.title":              "Our offices",
	"contact.offices.madrid":             "Madrid",

	"portal.hero.title":                    "Investor Portal",
	"portal.hero.subtitle":                 "Access your portfolio and documents",
	"portal.login.title":                   "Sign in",
	"portal.login.email":                   "Email",
	"portal.login.emailPlaceholder":        "you@email.com",
	"portal.login.password":                "Password",
	"portal.login.passwordPlaceholder":     "••••••••",
	"portal.login.button":                  "Sign in",
	"portal.login.demo":                    "Demo: enter any email and password",
	"portal.login.error":                   "Enter your email and password",
	"portal.login.noAccount":               "Not an investor yet?",
	"portal.login.contactUs":               "Contact us",
	"portal.dashboard.welcome":             "Welcome",
	"portal.dashboard.subtitle":            "Manage and monitor your investments in real time",
	"portal.dashboard.logout":              "Sign out",
	"portal.dashboard.totalInvested":       "Total invested",
	"portal.dashboard.activeFunds":         "2 active funds",
	"portal.dashboard.currentValue":        "Current value",
	"portal.dashboard.totalReturns":        "Total returns",
	"portal.dashboard.sinceInception":      "Since inception",
	"portal.dashboard.returnRate":          "Return rate",
	"portal.dashboard.annualized":          "Annualized",
	"portal.dashboard.myInvestments":       "My investments",
	"portal.dashboard.termBand":            "years • %s annual",
	"portal.dashboard.active":              "Active",
	"portal.dashboard.invested":            "Invested",
	"portal.dashboard.currentVal":          "Current value",
	"portal.dashboard.returns":             "Returns",
	"portal.dashboard.performance":         "Portfolio performance",
	"portal.dashboard.portfolioValue":      "Portfolio value (€)",
	"portal.dashboard.recentActivity":      "Recent activity",
	"portal.dashboard.date":                "Date",
	"portal.dashboard.description":         "Description",
	"portal.dashboard.amount":              "Amount",
	"portal.dashboard.activity1Date":       "01/15/2025",
	"portal.dashboard.activity1Desc":       "Annual return payment - Bricks One",
	"portal.dashboard.activity1Amount":     "+€7,000",
	"portal.dashboard.activity2Date":       "12/10/2024",
	"portal.dashboard.activity2Desc":       "Quarterly report available",
	"portal.dashboard.activity2Amount":     "-",
	"portal.dashboard.activity3Date":       "07/15/2024",
	"portal.dashboard.activity3Desc":       "Annual return payment - Bricks Seven",
	"portal.dashboard.activity3Amount":     "+€3,500",
	"portal.dashboard.activity4Date":       "03/01/2024",
	"portal.dashboard.activity4Desc":       "Subscription - Bricks Seven",
	"portal.dashboard.activity4Amount":     "€50,000",
	"portal.dashboard.documents":           "Documents",
	"portal.dashboard.downloadReport":      "Monthly report - January 2025",
	"portal.dashboard.downloadCertificate": "2024 tax certificate",
	"portal.dashboard.downloadContract":    "Subscription agreement",
	"portal.dashboard.downloadProspectus":  "Fund prospectus",
	"portal.dashboard.support.title":       "Need help?",
	"portal.dashboard.support.description": "Your personal manager is at your disposal.",
	"portal.dashboard.support.email":       "inversores@brickscapital.es",
	"portal.dashboard.support.phone":       "+34 910 123 456",
	"portal.dashboard.support.hours":       "Monday to Friday, 9:00 - 19:00",
}
