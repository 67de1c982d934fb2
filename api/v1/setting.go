package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surveydisco-ai/backend/dto"
	"github.com/surveydisco-ai/backend/services"
	"gorm.io/gorm"
)

var settingService = services.NewSettingService()

// GetSetting godoc
// @Summary Get a setting by key
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} models.Setting
// @Router /settings/{key} [get]
func GetSetting(c *gin.Context) {
	key := c.Param("key")

	setting, err := settingService.GetSetting(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Setting not found",
			})
			return
		}
		log.Printf("Error fetching setting %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch setting",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   setting,
	})
}

// UpdateSetting godoc
// @Summary Upsert a setting
// @Description Store a setting value, creating the key when it does not exist
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body dto.UpdateSettingRequest true "Setting value"
// @Success 200 {object} models.Setting
// @Router /settings/{key} [put]
func UpdateSetting(c *gin.Context) {
	key := c.Param("key")

	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	setting, err := settingService.SetSetting(key, req.Value)
	if err != nil {
		log.Printf("Error updating setting %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update setting",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   setting,
	})
}
