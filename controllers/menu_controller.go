package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

type CreateMenuItemReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// GET /menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu
func (mc *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{Name: req.Name, Description: req.Description, Price: req.Price}
	if err := mc.Svc.Create(&item); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Food item added", "item": item})
}

// DELETE /menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	if err := mc.Svc.Delete(uint(id)); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Message(c, "Menu item deleted successfully")
}
