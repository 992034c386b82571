package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Oignontom8283/timeclass/internal/response"
	"github.com/Oignontom8283/timeclass/internal/transform"
)

type TransformRequest struct {
	Transform string `json:"transform" example:"translate(10px, 20px) scale(1.5, 2)"`
	Name      string `json:"name" binding:"required" example:"scale"`
	// null оставляет аргумент без изменений
	Values []*float64 `json:"values"`
}

type UniformScaleRequest struct {
	Transform string `json:"transform" example:"translate(10px, 20px) scale(1.5, 2)"`
}

type TransformResponse struct {
	Transform string `json:"transform" example:"translate(10px, 20px) scale(2, 2)"`
}

// SetTransformHandler меняет аргументы одной функции в строке CSS transform
// @Summary		Изменение transform
// @Description	Переписывает первое вхождение функции name, сохраняя единицы измерения аргументов
// @Tags			transform
// @Accept			json
// @Produce		json
// @Param			request	body		TransformRequest		true	"Строка transform и новые значения"
// @Success		200		{object}	TransformResponse
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		404		{object}	response.ErrorResponse	"Функция не найдена (TRANSFORM_NOT_FOUND)"
// @Router			/transform [post]
func SetTransformHandler(c *gin.Context) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	out, err := transform.Set(req.Transform, req.Name, req.Values)
	if err != nil {
		transformFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, TransformResponse{Transform: out})
}

// UniformScaleHandler выравнивает оба аргумента scale по большему
// @Summary		Равномерный масштаб
// @Tags			transform
// @Accept			json
// @Produce		json
// @Param			request	body		UniformScaleRequest		true	"Строка transform"
// @Success		200		{object}	TransformResponse
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		404		{object}	response.ErrorResponse	"В строке нет scale (TRANSFORM_NOT_FOUND)"
// @Router			/transform/uniform-scale [post]
func UniformScaleHandler(c *gin.Context) {
	var req UniformScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	out, err := transform.UniformScale(req.Transform)
	if err != nil {
		transformFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, TransformResponse{Transform: out})
}

func transformFailed(c *gin.Context, err error) {
	if errors.Is(err, transform.ErrNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "TRANSFORM_NOT_FOUND",
			Message: "Функция не найдена в строке transform",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "Внутренняя ошибка сервера",
		Details: err.Error(),
	})
}
