package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"orderbridge/internal/models"
	"orderbridge/internal/order"
)

// Webhook handles the form provider's POST: a form-encoded body whose
// rawRequest field carries the JSON submission.
func Webhook(proc *order.Processor, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.PostForm("rawRequest")
		if raw == "" {
			respondFailure(c, log, order.StageParse, errors.New("rawRequest field is required"))
			return
		}

		sub, err := models.ParseSubmission([]byte(raw))
		if err != nil {
			respondFailure(c, log, order.StageParse, err)
			return
		}

		res, err := proc.Process(sub)
		if err != nil {
			stage := order.StageParse
			message := err
			var stageErr *order.StageError
			if errors.As(err, &stageErr) {
				stage = stageErr.Stage
				message = stageErr.Err
			}
			respondFailure(c, log, stage, message)
			return
		}

		log.Info("order processed",
			zap.String("request_id", c.GetString("request_id")),
			zap.Int64("sale_order_id", res.SaleOrderID),
			zap.Int("product_count", res.ProductCount),
		)
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "Order received and processed successfully.",
			"saleOrderId":  res.SaleOrderID,
			"productCount": res.ProductCount,
		})
	}
}

// respondFailure writes the flat failure envelope. Every failure collapses
// to a 500 regardless of stage; the stage only reaches the logs.
func respondFailure(c *gin.Context, log *zap.Logger, stage order.Stage, err error) {
	log.Error("webhook failed",
		zap.String("request_id", c.GetString("request_id")),
		zap.String("stage", string(stage)),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": err.Error(),
	})
}
