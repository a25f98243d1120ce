package registrations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"registration-backend/internal/extraction"
	"registration-backend/internal/shared/server/middleware"
	"registration-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches registration routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/registrations", h.create)
	rg.POST("/registrations/upload", h.upload)
	rg.GET("/registrations", h.list)
	rg.GET("/registrations/:id", h.get)
	rg.POST("/registrations/:id/rescore", h.rescore)
	rg.PATCH("/registrations/:id", h.update)
	rg.POST("/registrations/:id/submit", h.submit)
}

type createRequest struct {
	Text string `json:"text"`
	Age  int    `json:"age"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Age < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "age must not be negative", nil)
		return
	}

	reg, err := h.Svc.CreateFromText(c.Request.Context(), userID, req.Text, req.Age)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create registration", nil)
		}
		return
	}

	c.Set("registrationId", reg.ID)
	respond.JSON(c, http.StatusCreated, toResponse(reg))
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	age := 0
	if v := c.PostForm("age"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "age must be a non-negative integer", nil)
			return
		}
		age = parsed
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	reg, err := h.Svc.CreateFromUpload(c.Request.Context(), userID, fileHeader.Filename, file, age)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "no text could be extracted from the file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process upload", nil)
		}
		return
	}

	c.Set("registrationId", reg.ID)
	respond.JSON(c, http.StatusCreated, toResponse(reg))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Set("registrationId", c.Param("id"))

	reg, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(reg))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	regs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list registrations", nil)
		return
	}

	resp := make([]gin.H, 0, len(regs))
	for _, reg := range regs {
		resp = append(resp, gin.H{
			"registrationId": reg.ID,
			"source":         reg.Source,
			"fullName":       reg.Record.FullName,
			"healthScore":    reg.Health.TotalScore,
			"fraudRiskScore": reg.Fraud.FraudRiskScore,
			"riskLabel":      reg.Fraud.RiskLabel,
			"createdAt":      reg.CreatedAt,
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}

type rescoreRequest struct {
	Age int `json:"age"`
}

func (h *Handler) rescore(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req rescoreRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}
	if req.Age < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "age must not be negative", nil)
		return
	}

	c.Set("registrationId", c.Param("id"))
	reg, err := h.Svc.Rescore(c.Request.Context(), userID, c.Param("id"), req.Age)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(reg))
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var record extraction.ExtractedData
	if err := c.ShouldBindJSON(&record); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	c.Set("registrationId", c.Param("id"))
	reg, err := h.Svc.UpdateRecord(c.Request.Context(), userID, c.Param("id"), record)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(reg))
}

func (h *Handler) submit(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Set("registrationId", c.Param("id"))

	res, err := h.Svc.Submit(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}

	if res.SubmissionID != "" {
		c.Set("submissionId", res.SubmissionID)
	}
	respond.JSON(c, http.StatusOK, res)
}

func respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "registration not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch registration", nil)
	}
}
