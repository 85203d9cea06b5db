package handlers

import (
	"net/http"

	"littlelemon-api/config"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
)

type GroupMemberRequest struct {
	Username string `json:"username" binding:"required"`
}

func userSummary(u models.User) gin.H {
	return gin.H{"id": u.ID, "username": u.Username, "email": u.Email}
}

// ListGroupMembers returns every user in the named role group — manager only
func ListGroupMembers(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var group models.Group
		if err := config.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Role group missing"})
			return
		}

		var users []models.User
		if err := config.DB.Model(&group).Association("Users").Find(&users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list group members"})
			return
		}

		out := make([]gin.H, 0, len(users))
		for _, u := range users {
			out = append(out, userSummary(u))
		}
		c.JSON(http.StatusOK, gin.H{"count": len(out), "users": out})
	}
}

// AddGroupMember puts a user into the named role group — manager only.
// Adding an existing member is a no-op success.
func AddGroupMember(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GroupMemberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}

		var user models.User
		if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var group models.Group
		if err := config.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Role group missing"})
			return
		}

		if err := config.DB.Model(&user).Association("Groups").Append(&group); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add group member"})
			return
		}
		c.JSON(http.StatusCreated, userSummary(user))
	}
}

// RemoveGroupMember takes a user out of the named role group — manager only.
// Orders already assigned to a removed delivery crew member keep their
// assignment; membership removal never cascades.
func RemoveGroupMember(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GroupMemberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
			return
		}

		var user models.User
		if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var group models.Group
		if err := config.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Role group missing"})
			return
		}

		if err := config.DB.Model(&user).Association("Groups").Delete(&group); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove group member"})
			return
		}
		c.JSON(http.StatusNoContent, gin.H{"message": "delete successful"})
	}
}
