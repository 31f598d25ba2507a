package i18n

var es = map[string]string{
	"site.name":        "Bricks Capital",
	"site.description": "Gestora de fondos de inversión inmobiliaria",

	"nav.home":     "Inicio",
	"nav.about":    "Nosotros",
	"nav.funds":    "Fondos",
	"nav.contact":  "Contacto",
	"nav.portal":   "Área de Inversores",
	"nav.cta":      "Invertir ahora",
	"nav.language": "English",

	"footer.tagline": "Inversión inmobiliaria con rentabilidad mínima garantizada.",
	"footer.company": "Compañía",
	"footer.legal":   "Legal",
	"footer.privacy": "Política de privacidad",
	"footer.terms":   "Aviso legal",
	"footer.cookies": "Política de cookies",
	"footer.address": "Paseo de la Castellana 89, 28046 Madrid",
	"footer.rights":  "Todos los derechos reservados.",
	"footer.warning": "Las rentabilidades pasadas no garantizan rentabilidades futuras.",

	"home.hero.title":           "Construimos patrimonio ladrillo a ladrillo",
	"home.hero.subtitle":        "Fondos inmobiliarios con un 7% de rentabilidad mínima anual",
	"home.hero.description":     "Invierte en activos residenciales, comerciales y logísticos seleccionados por un equipo con más de 15 años de experiencia.",
	"home.hero.cta":             "Descubre nuestros fondos",
	"home.hero.secondary":       "Calcula tu rentabilidad",
	"home.stats.aum":            "Activos bajo gestión",
	"home.stats.aumValue":       "250 M€",
	"home.stats.investors":      "Inversores",
	"home.stats.investorsValue": "1.200+",
	"home.stats.years":          "Años de experiencia",
	"home.stats.yearsValue":     "15",
	"home.stats.return":         "Rentabilidad media anual",
	"home.stats.returnValue":    "11,2%",
	"home.funds.title":          "Nuestros fondos",
	"home.funds.subtitle":       "Dos estrategias, un mismo compromiso: proteger y hacer crecer tu capital.",
	"home.funds.one":            "Diversificación a 10 años con rentabilidad del 7% al 15% anual.",
	"home.funds.seven":          "Renta estable a 7 años con rentabilidad del 7% al 10% anual.",
	"home.funds.more":           "Ver detalles",
	"home.why.title":            "¿Por qué Bricks Capital?",
	"home.why.1.title":          "Rentabilidad mínima",
	"home.why.1.text":           "Un 7% anual mínimo en ambos fondos, pagado cada año.",
	"home.why.2.title":          "Activos reales",
	"home.why.2.text":           "Tu inversión respaldada por inmuebles tangibles en ubicaciones prime.",
	"home.why.3.title":          "Transparencia total",
	"home.why.3.text":           "Informes trimestrales y acceso en línea a tu cartera.",
	"home.calculator.title":     "Simula tu inversión",

	"about.hero.title":     "Sobre nosotros",
	"about.hero.subtitle":  "Una gestora independiente especializada en inversión inmobiliaria",
	"about.mission.title":  "Nuestra misión",
	"about.mission.text":   "Acercar la inversión inmobiliaria profesional a inversores particulares e institucionales con total transparencia.",
	"about.values.title":   "Nuestros valores",
	"about.values.1.title": "Prudencia",
	"about.values.1.text":  "Cada activo pasa un riguroso análisis antes de entrar en cartera.",
	"about.values.2.title": "Compromiso",
	"about.values.2.text":  "Invertimos nuestro propio capital junto al de nuestros inversores.",
	"about.values.3.title": "Cercanía",
	"about.values.3.text":  "Un equipo de relación con inversores siempre disponible.",
	"about.team.title":     "Nuestro equipo",
	"about.team.text":      "Profesionales procedentes de banca de inversión, promoción y gestión de activos.",
	"about.cta":            "Habla con nosotros",

	"funds.hero.title":                "Nuestros fondos",
	"funds.hero.subtitle":             "Elige la estrategia que mejor se adapta a tus objetivos",
	"funds.hero.description":          "Ambos fondos garantizan una rentabilidad mínima del 7% anual.",
	"funds.comparison.title":          "Comparativa de fondos",
	"funds.comparison.feature":        "Característica",
	"funds.comparison.duration":       "Duración",
	"funds.comparison.duration1":      "10 años",
	"funds.comparison.duration2":      "7 años",
	"funds.comparison.minReturn":      "Rentabilidad mínima",
	"funds.comparison.minReturn1":     "7% anual",
	"funds.comparison.minReturn2":     "7% anual",
	"funds.comparison.maxReturn":      "Rentabilidad máxima",
	"funds.comparison.maxReturn1":     "15% anual",
	"funds.comparison.maxReturn2":     "10% anual",
	"funds.comparison.minInvestment":  "Inversión mínima",
	"funds.comparison.minInvestment1": "25.000 €",
	"funds.comparison.minInvestment2": "10.000 €",
	"funds.comparison.liquidity":      "Liquidez",
	"funds.comparison.liquidity1":     "Anual, a partir del año 5",
	"funds.comparison.liquidity2":     "Anual, a partir del año 3",
	"funds.comparison.risk":           "Perfil de riesgo",
	"funds.comparison.risk1":          "Moderado",
	"funds.comparison.risk2":          "Conservador",
	"funds.comparison.idealFor":       "Ideal para",
	"funds.comparison.idealFor1":      "Crecimiento a largo plazo",
	"funds.comparison.idealFor2":      "Rentas estables",
	"funds.one.tagline":               "Crecimiento diversificado a largo plazo",
	"funds.one.description":           "Bricks One invierte en una cartera diversificada de activos residenciales, comerciales, logísticos y hoteleros.",
	"funds.seven.tagline":             "Rentas estables a medio plazo",
	"funds.seven.description":         "Bricks Seven se centra en activos residenciales en alquiler con ingresos recurrentes.",
	"funds.performance":               "Rentabilidad histórica",
	"funds.performance.year":          "Año",
	"funds.performance.return":        "Rentabilidad",
	"funds.performance.average":       "Media",

	"calculator.title":             "Calculadora de rentabilidad",
	"calculator.subtitle":          "Estima el rendimiento de tu inversión",
	"calculator.fund":              "Fondo",
	"calculator.amount":            "Importe a invertir",
	"calculator.years":             "Plazo de inversión",
	"calculator.years_plural":      "años",
	"calculator.calculate":         "Calcular",
	"calculator.results":           "Resultados",
	"calculator.initialInvestment": "Inversión inicial",
	"calculator.guaranteedReturn":  "Rentabilidad garantizada (7%)",
	"calculator.potentialReturn":   "Rentabilidad potencial",
	"calculator.earnings":          "Beneficio",
	"calculator.perYear":           "/año",
	"calculator.note":              "Cálculo con interés simple: la rentabilidad se paga cada año y no se reinvierte. Las cifras son orientativas.",
	"calculator.empty":             "Completa los datos y calcula tu rentabilidad",
	"calculator.bricksOne":         "Bricks One (7-15%, hasta 10 años)",
	"calculator.bricksSeven":       "Bricks Seven (7-10%, hasta 7 años)",
	"calculator.error.years":       "Este plazo no está disponible para el fondo elegido",
	"calculator.error.fund":        "Selecciona un fondo válido",

	"contact.hero.title":                 "Contacto",
	"contact.hero.subtitle":              "Estamos aquí para ayudarte",
	"contact.hero.description":           "Cuéntanos tus objetivos y un asesor se pondrá en contacto contigo.",
	"contact.form.title":                 "Envíanos un mensaje",
	"contact.form.name":                  "Nombre completo",
	"contact.form.email":                 "Correo electrónico",
	"contact.form.phone":                 "Teléfono",
	"contact.form.fund":                  "Fondo de interés",
	"contact.form.fundPlaceholder":       "Selecciona un fondo",
	"contact.form.bothFunds":             "Ambos fondos",
	"contact.form.investmentAmount":      "Importe estimado",
	"contact.form.investmentPlaceholder": "Selecciona un rango",
	"contact.form.subject":               "Asunto",
	"contact.form.subjectPlaceholder":    "¿En qué podemos ayudarte?",
	"contact.form.message":               "Mensaje",
	"contact.form.consent":               "Acepto la política de privacidad y el tratamiento de mis datos.",
	"contact.form.submit":                "Enviar mensaje",
	"contact.form.success":               "¡Mensaje enviado! Nos pondremos en contacto contigo pronto.",
	"contact.form.error.consent":         "Debes aceptar la política de privacidad",
	"contact.form.error.invalid":         "Revisa los campos obligatorios: nombre, correo electrónico y mensaje.",
	"contact.form.error.rateLimited":     "Demasiados envíos. Inténtalo de nuevo en unos minutos.",
	"contact.form.error.internal":        "No hemos podido enviar tu mensaje. Inténtalo de nuevo.",
	"contact.ranges.range1":              "10.000 € - 25.000 €",
	"contact.ranges.range2":              "25.000 € - 50.000 €",
	"contact.ranges.range3":              "50.000 € - 100.000 €",
	"contact.ranges.range4":              "100.000 € - 250.000 €",
	"contact.ranges.range5":              "Más de 250.000 €",
	"contact.direct.title":               "Contacto directo",
	"contact.direct.general":             "Consultas generales",
	"contact.direct.generalEmail":        "info@brickscapital.es",
	"contact.direct.investors":           "Relación con inversores",
	"contact.direct.investorsEmail":      "inversores@brickscapital.es",
	"contact.direct.investorsPhone":      "+34 910 123 456",
	"contact.direct.press":               "Prensa",
	"contact.direct.pressEmail":          "prensa@brickscapital.es",
	"contact.schedule.title":             "Horario de atención",
	"contact.schedule.weekdays":          "Lunes a viernes",
	"contact.schedule.weekdaysTime":      "9:00 - 19:00",
	"contact.schedule.weekends":          "Fines de semana",
	"contact.schedule.weekendsTime":      "Cerrado",
	"contact.offices.title":              "Nuestras oficinas",
	"contact.offices.madrid":             "Madrid",

	"portal.hero.title":                    "Área de Inversores",
	"portal.hero.subtitle":                 "Accede a tu cartera y documentación",
	"portal.login.title":                   "Iniciar sesión",
	"portal.login.email":                   "Correo electrónico",
	"portal.login.emailPlaceholder":        "tu@email.com",
	"portal.login.password":                "Contraseña",
	"portal.login.passwordPlaceholder":     "••••••••",
	"portal.login.button":                  "Entrar",
	"portal.login.demo":                    "Demo: introduce cualquier correo y contraseña",
	"portal.login.error":                   "Introduce tu correo y contraseña",
	"portal.login.noAccount":               "¿Todavía no eres inversor?",
	"portal.login.contactUs":               "Contacta con nosotros",
	"portal.dashboard.welcome":             "Bienvenido",
	"portal.dashboard.subtitle":            "Gestiona y monitorea tus inversiones en tiempo real",
	"portal.dashboard.logout":              "Cerrar sesión",
	"portal.dashboard.totalInvested":       "Total invertido",
	"portal.dashboard.activeFunds":         "2 fondos activos",
	"portal.dashboard.currentValue":        "Valor actual",
	"portal.dashboard.totalReturns":        "Rentabilidad total",
	"portal.dashboard.sinceInception":      "Desde inicio",
	"portal.dashboard.returnRate":          "Tasa de rentabilidad",
	"portal.dashboard.annualized":          "Anualizado",
	"portal.dashboard.myInvestments":       "Mis inversiones",
	"portal.dashboard.termBand":            "años • %s anual",
	"portal.dashboard.active":              "Activo",
	"portal.dashboard.invested":            "Invertido",
	"portal.dashboard.currentVal":          "Valor actual",
	"portal.dashboard.returns":             "Rentabilidad",
	"portal.dashboard.performance":         "Evolución de la cartera",
	"portal.dashboard.portfolioValue":      "Valor de cartera (€)",
	"portal.dashboard.recentActivity":      "Actividad reciente",
	"portal.dashboard.date":                "Fecha",
	"portal.dashboard.description":         "Descripción",
	"portal.dashboard.amount":              "Importe",
	"portal.dashboard.activity1Date":       "15/01/2025",
	"portal.dashboard.activity1Desc":       "Pago de rentabilidad anual - Bricks One",
	"portal.dashboard.activity1Amount":     "+7.000 €",
	"portal.dashboard.activity2Date":       "10/12/2024",
	"portal.dashboard.activity2Desc":       "Informe trimestral disponible",
	"portal.dashboard.activity2Amount":     "-",
	"portal.dashboard.activity3Date":       "15/07/2024",
	"portal.dashboard.activity3Desc":       "Pago de rentabilidad anual - Bricks Seven",
	"portal.dashboard.activity3Amount":     "+3.500 €",
	"portal.dashboard.activity4Date":       "01/03/2024",
	"portal.dashboard.activity4Desc":       "Suscripción - Bricks Seven",
	"portal.dashboard.activity4Amount":     "50.000 €",
	"portal.dashboard.documents":           "Documentos",
	"portal.dashboard.downloadReport":      "Informe mensual - Enero 2025",
	"portal.dashboard.downloadCertificate": "Certificado fiscal 2024",
	"portal.dashboard.downloadContract":    "Contrato de suscripción",
	"portal.dashboard.downloadProspectus":  "Folleto del fondo",
	"portal.dashboard.support.title":       "¿Necesitas ayuda?",
	"portal.dashboard.support.description": "Tu gestor personal está a tu disposición.",
	"portal.dashboard.support.email":       "inversores@brickscapital.es",
	"portal.dashboard.support.phone":       "+34 910 123 456",
	"portal.dashboard.support.hours":       "Lunes a viernes, 9:00 - 19:00",
}
