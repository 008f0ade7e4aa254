package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.PlaceOrder(&req)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Order placed successfully", "order": order})
}

// GET /orders/user/:user_id
func (oc *OrderController) HistoryForUser(c *gin.Context) {
	history, err := oc.Svc.OrderHistory(c.Param("user_id"))
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, history)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := oc.Svc.DeleteOrder(uint(id)); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Message(c, "Order deleted successfully")
}
