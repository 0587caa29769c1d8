package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"userhub/config"
	"userhub/internal/delivery/api/middleware"
	"userhub/internal/delivery/api/response"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	formFieldPhoto = "photo"
	formFieldClear = "clear"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProfileHandler serves profile reads, edits, cards and photos.
type ProfileHandler struct {
	profileUC           usecase.ProfileUsecase
	restrictEditToOwner bool
	logger              *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	restrict := false
	if params.Config != nil && params.Config.Auth != nil {
		restrict = params.Config.Auth.RestrictEditToOwner
	}

	return &ProfileHandler{
		profileUC:           params.ProfileUC,
		restrictEditToOwner: restrict,
		logger:              params.Logger,
	}
}

// EditProfileRequest is the JSON form of a profile edit. A JSON null clears the field.
type EditProfileRequest struct {
	FirstName usecase.Patch[string] `json:"firstName"`
	LastName  usecase.Patch[string] `json:"lastName"`
	Email     usecase.Patch[string] `json:"email"`
	Gender    usecase.Patch[string] `json:"gender"`
	Photo     usecase.Patch[string] `json:"photo"`
}

// editProfileFields carries the supplied values through the validator.
type editProfileFields struct {
	FirstName string `json:"firstName" validate:"omitempty,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female"`
}

// GetProfile returns the profile with the given id
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := parseProfileID(c)
	if err != nil {
		return err
	}

	view, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view)
}

// EditProfile applies a partial update from a JSON or multipart/form-data body
func (h *ProfileHandler) EditProfile(c echo.Context) error {
	userID, err := parseProfileID(c)
	if err != nil {
		return err
	}

	if h.restrictEditToOwner {
		callerID, ok := middleware.GetUserID(c)
		if !ok || callerID != userID {
			return domainerrors.ErrForbidden.WrapMessage("profiles can only be edited by their owner")
		}
	}

	var input *usecase.EditProfileInput
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		input, err = editInputFromMultipart(c)
	} else {
		input, err = editInputFromJSON(c)
	}
	if err != nil {
		return err
	}

	if err := c.Validate(fieldsOf(input)); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.profileUC.EditProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// ProfileCard returns a PNG QR code linking to the profile
func (h *ProfileHandler) ProfileCard(c echo.Context) error {
	userID, err := parseProfileID(c)
	if err != nil {
		return err
	}

	png, err := h.profileUC.ProfileCard(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetPhoto streams a stored profile photo by asset name
func (h *ProfileHandler) GetPhoto(c echo.Context) error {
	asset, err := h.profileUC.OpenPhoto(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer asset.Body.Close()

	contentType := asset.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	header := c.Response().Header()
	header.Set("Cache-Control", "public, max-age=86400")
	if asset.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(asset.Size, 10))
	}

	return c.Stream(http.StatusOK, contentType, asset.Body)
}

func parseProfileID(c echo.Context) (int64, error) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return userID, nil
}

func editInputFromJSON(c echo.Context) (*usecase.EditProfileInput, error) {
	var req EditProfileRequest
	if c.Request().ContentLength != 0 {
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("malformed profile body")
		}
	}

	if _, ok := req.Photo.Value(); ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo must be uploaded as multipart/form-data")
	}

	return &usecase.EditProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Gender:     req.Gender,
		ClearPhoto: req.Photo.IsClear(),
	}, nil
}

func editInputFromMultipart(c echo.Context) (*usecase.EditProfileInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart body")
	}

	input := &usecase.EditProfileInput{
		FirstName: formPatch(form, "firstName"),
		LastName:  formPatch(form, "lastName"),
		Email:     formPatch(form, "email"),
		Gender:    formPatch(form, "gender"),
	}

	for _, field := range form.Value[formFieldClear] {
		switch field {
		case "firstName":
			input.FirstName = usecase.Clear[string]()
		case "lastName":
			input.LastName = usecase.Clear[string]()
		case "email":
			input.Email = usecase.Clear[string]()
		case "gender":
			input.Gender = usecase.Clear[string]()
		case formFieldPhoto:
			input.ClearPhoto = true
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown field to clear: " + field)
		}
	}

	if files := form.File[formFieldPhoto]; len(files) > 0 {
		upload, err := readUpload(files[0])
		if err != nil {
			return nil, err
		}
		input.Photo = upload
	}

	return input, nil
}

func formPatch(form *multipart.Form, field string) usecase.Patch[string] {
	values, ok := form.Value[field]
	if !ok || len(values) == 0 {
		return usecase.Patch[string]{}
	}

	return usecase.Set(values[0])
}

func readUpload(fh *multipart.FileHeader) (*usecase.PhotoUpload, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable photo upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable photo upload")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo upload is empty")
	}

	return &usecase.PhotoUpload{Filename: fh.Filename, Data: data}, nil
}

func fieldsOf(input *usecase.EditProfileInput) *editProfileFields {
	fields := &editProfileFields{}
	fields.FirstName, _ = input.FirstName.Value()
	fields.LastName, _ = input.LastName.Value()
	fields.Email, _ = input.Email.Value()
	fields.Gender, _ = input.Gender.Value()
	fields.Email = strings.TrimSpace(fields.Email)

	return fields
}
