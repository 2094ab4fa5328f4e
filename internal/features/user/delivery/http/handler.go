package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "ton-mini-app-backend/internal/common/errors"
	"ton-mini-app-backend/internal/common/middleware"
	"ton-mini-app-backend/internal/features/user/models"
	"ton-mini-app-backend/internal/features/user/service"
)

const walletConnectedMessage = "Wallet connected successfully"

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/user", h.RegisterUser)
	router.GET("/user/:tg_id", h.GetUser)
	router.POST("/connect-wallet", h.ConnectWallet)
}

// bindJSON treats an empty body as an empty object. Only a body that is not
// JSON is a bad request. Fields are not validated: a value of the wrong type
// fails the same way the store rejects it.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) || errors.Is(err, models.ErrMalformedTelegramID) {
		_ = c.Error(apperrors.NewDatabaseError("decode request", err))
		return false
	}

	_ = c.Error(apperrors.NewBadRequestError(err))
	return false
}

// @Summary Register user
// @Description Returns the user for tg_id, creating it with the signup balance on first call.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.RegisterUserRequest true "Telegram user"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/user [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req models.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	in := models.RegisterInput{
		TelegramID: req.TgID.Ptr(),
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	}
	if tgUser, ok := middleware.TelegramUser(c); ok {
		fillFromInitData(&in, tgUser.ID, tgUser.Username, tgUser.FirstName, tgUser.LastName)
	}

	user, err := h.service.Register(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{Success: true, User: user})
}

func fillFromInitData(in *models.RegisterInput, id int64, username, firstName, lastName string) {
	if in.TelegramID == nil && id != 0 {
		in.TelegramID = &id
	}
	if in.Username == "" {
		in.Username = username
	}
	if in.FirstName == "" {
		in.FirstName = firstName
	}
	if in.LastName == "" {
		in.LastName = lastName
	}
}

// @Summary Get user
// @Description Looks up a registered user by Telegram ID.
// @Tags users
// @Produce json
// @Param tg_id path int true "Telegram ID"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/user/{tg_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("tg_id"), 10, 64)
	if err != nil {
		_ = c.Error(apperrors.New(apperrors.ErrCodeBadRequest, "Invalid tg_id"))
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			_ = c.Error(apperrors.NewNotFoundError("user", id))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{Success: true, User: user})
}

// @Summary Connect wallet
// @Description Initiates the balance transfer and stores the wallet address (last write wins).
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.ConnectWalletRequest true "Wallet link"
// @Success 200 {object} models.ConnectWalletResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /api/connect-wallet [post]
func (h *UserHandler) ConnectWallet(c *gin.Context) {
	var req models.ConnectWalletRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.service.ConnectWallet(c.Request.Context(), models.ConnectWalletInput{
		TelegramID:    req.TgID.Ptr(),
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.ConnectWalletResponse{
		Success:           true,
		Message:           walletConnectedMessage,
		TransferInitiated: link.Transfer != nil && link.Transfer.Success,
		Bonus:             link.Bonus,
	})
}
