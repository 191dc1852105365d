package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bazaardirectory/internal/delivery/http/helpers"
	"bazaardirectory/internal/domain"
)

// BoothsSuccessResponse is the success envelope for booth list endpoints.
type BoothsSuccessResponse struct {
	Data  []*domain.Booth   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BoothSuccessResponse is the success envelope for single-booth endpoints.
type BoothSuccessResponse struct {
	Data  *domain.Booth     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type BoothController struct {
	Logger  *slog.Logger
	Service domain.BoothService
}

func NewBoothController(logger *slog.Logger, svc domain.BoothService) *BoothController {
	return &BoothController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *BoothController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "booth not found")
	case errors.Is(err, domain.ErrValidation):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// List godoc
// @Summary List booths
// @Description Returns all booths, or only those of one event when the eventId query parameter is given.
// @Tags booths
// @Produce json
// @Param eventId query string false "Only booths of this event"
// @Success 200 {object} controllers.BoothsSuccessResponse "data contains the booths"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /booths [get]
func (c *BoothController) List(w http.ResponseWriter, r *http.Request) {
	booths, err := c.Service.ListBooths(r.Context(), r.URL.Query().Get("eventId"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booths)
}

// Create godoc
// @Summary Create a booth
// @Description Accepts multipart form fields plus up to 5 photo files; extra photos are dropped. eventId is required; it is not checked against the events collection. products is a comma-separated list; lat and lng, when both given, become the booth's map location.
// @Tags booths
// @Accept mpfd
// @Produce json
// @Param eventId formData string true "Owning event's ID"
// @Param name formData string false "Booth name"
// @Param description formData string false "Booth description"
// @Param contact formData string false "Vendor contact"
// @Param socialMedia formData string false "Social media handle"
// @Param boothNumber formData string false "Booth number"
// @Param products formData string false "Comma-separated product list"
// @Param lat formData number false "Latitude"
// @Param lng formData number false "Longitude"
// @Param photos formData file false "Booth photos (up to 5)"
// @Success 201 {object} controllers.BoothSuccessResponse "data contains the created booth"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /booths [post]
func (c *BoothController) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	booth := &domain.Booth{
		EventID:     r.PostFormValue("eventId"),
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Contact:     r.PostFormValue("contact"),
		SocialMedia: r.PostFormValue("socialMedia"),
		BoothNumber: r.PostFormValue("boothNumber"),
		Products:    splitList(r.PostFormValue("products")),
	}

	latStr, latOK := formValue(r, "lat")
	lngStr, lngOK := formValue(r, "lng")
	if latOK && lngOK {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "lat must be a number")
			return
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "lng must be a number")
			return
		}
		booth.Location = &domain.GeoPoint{Lat: lat, Lng: lng}
	}

	if err := c.Service.CreateBooth(r.Context(), booth, formFiles(r, "photos")); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booth)
}

// Delete godoc
// @Summary Delete a booth
// @Tags booths
// @Param id path string true "Booth ID"
// @Success 204 "booth removed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /booths/{id} [delete]
func (c *BoothController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteBooth(r.Context(), r.PathValue("id")); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Search godoc
// @Summary Search booths
// @Description Case-insensitive substring match against booth name, description, and products. An empty query returns an empty list.
// @Tags booths
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {object} controllers.BoothsSuccessResponse "data contains the matching booths"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /booths/search [get]
func (c *BoothController) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		helpers.WriteJSONSuccess(w, http.StatusOK, []*domain.Booth{})
		return
	}
	booths, err := c.Service.SearchBooths(r.Context(), query)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booths)
}
