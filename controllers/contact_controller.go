package controllers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"brickscapital/middleware"
	"brickscapital/services"
	"brickscapital/types"
	"brickscapital/utils/i18n"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ContactControllerI interface {
	Submit(ctx *gin.Context)
	SubmitAPI(ctx *gin.Context)
	RateLimited(ctx *gin.Context)
	Export(ctx *gin.Context)
}

type contactController struct {
	contact    services.ContactServiceI
	views      *Views
	adminToken string
}

func NewContactController(contact services.ContactServiceI, views *Views, adminToken string) ContactControllerI {
	return &contactController{contact: contact, views: views, adminToken: adminToken}
}

// Submit handles the contact page form and re-renders the page with the
// outcome.
func (c *contactController) Submit(ctx *gin.Context) {
	defer sentry.Recover()
	span := sentry.StartSpan(ctx.Request.Context(), "[GIN] SubmitEnquiry", sentry.WithTransactionName("SubmitEnquiry"))
	defer span.Finish()

	view := c.views.Page(ctx, services.PageContact)

	var form types.EnquiryForm
	if err := ctx.ShouldBind(&form); err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		view.Flash, view.FlashError = "contact.form.error.invalid", true
		c.views.Render(ctx, http.StatusBadRequest, view)
		return
	}

	_, err := c.contact.Submit(span.Context(), form, view.Lang.String())
	if err != nil {
		status, key := enquiryError(err)
		if status == http.StatusInternalServerError {
			span.Status = sentry.SpanStatusInternalError
		} else {
			span.Status = sentry.SpanStatusInvalidArgument
		}
		view.Form = form
		view.Flash, view.FlashError = key, true
		c.views.Render(ctx, status, view)
		return
	}

	view.Flash = "contact.form.success"
	c.views.Render(ctx, http.StatusOK, view)
}

func (c *contactController) SubmitAPI(ctx *gin.Context) {
	defer sentry.Recover()
	span := sentry.StartSpan(ctx.Request.Context(), "[GIN] SubmitEnquiryAPI", sentry.WithTransactionName("SubmitEnquiryAPI"))
	defer span.Finish()

	var form types.EnquiryForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lang := middleware.Language(ctx)
	enquiry, err := c.contact.Submit(span.Context(), form, lang.String())
	if err != nil {
		status, key := enquiryError(err)
		if status == http.StatusInternalServerError {
			span.Status = sentry.SpanStatusInternalError
		} else {
			span.Status = sentry.SpanStatusInvalidArgument
		}
		ctx.JSON(status, gin.H{"error": err.Error(), "message": i18n.T(lang, key)})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":        enquiry.ID,
		"createdAt": enquiry.CreatedAt,
		"message":   i18n.T(lang, "contact.form.success"),
	})
}

// RateLimited renders the contact page for visitors over their submission
// budget.
func (c *contactController) RateLimited(ctx *gin.Context) {
	view := c.views.Page(ctx, services.PageContact)
	view.Flash, view.FlashError = "contact.form.error.rateLimited", true
	c.views.Render(ctx, http.StatusTooManyRequests, view)
}

// Export downloads every stored enquiry as a spreadsheet. It is only
// reachable with the configured admin token.
func (c *contactController) Export(ctx *gin.Context) {
	defer sentry.Recover()
	span := sentry.StartSpan(ctx.Request.Context(), "[GIN] ExportEnquiries", sentry.WithTransactionName("ExportEnquiries"))
	defer span.Finish()

	if c.adminToken == "" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if subtle.ConstantTimeCompare([]byte(ctx.GetHeader("X-Admin-Token")), []byte(c.adminToken)) != 1 {
		span.Status = sentry.SpanStatusUnauthenticated
		zap.L().Warn("Rejected enquiry export", zap.String("ip", ctx.ClientIP()))
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	enquiries, err := c.contact.Enquiries(span.Context())
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		sentry.CaptureException(err)
		zap.L().Error("Error listing enquiries", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error while fetching enquiries"})
		return
	}

	buf, err := services.ExportEnquiries(enquiries)
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		sentry.CaptureException(err)
		zap.L().Error("Error exporting enquiries", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error while exporting enquiries"})
		return
	}

	zap.L().Info("Enquiries exported", zap.Int("count", len(enquiries)))
	ctx.Header("Content-Disposition", `attachment; filename="enquiries.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// enquiryError maps a submission error to a status and a dictionary key.
func enquiryError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrConsentRequired):
		return http.StatusBadRequest, "contact.form.error.consent"
	case errors.Is(err, services.ErrInvalidEnquiry):
		return http.StatusBadRequest, "contact.form.error.invalid"
	default:
		return http.StatusInternalServerError, "contact.form.error.internal"
	}
}
