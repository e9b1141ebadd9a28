package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samridhisinghh987188/saas-contract-dashboard/service"
)

type UploadHandler struct {
	simulator *service.UploadSimulator
}

func NewUploadHandler(simulator *service.UploadSimulator) *UploadHandler {
	return &UploadHandler{simulator: simulator}
}

type EnqueueRequest struct {
	Files []service.FileDescriptor `json:"files" binding:"required,min=1,dive"`
}

// Enqueue accepts a batch of file descriptors and starts a simulated
// upload for each. No bytes are transferred; progress is synthetic.
func (h *UploadHandler) Enqueue(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one file is required"})
		return
	}

	tasks := h.simulator.Enqueue(req.Files)
	c.JSON(http.StatusAccepted, gin.H{"tasks": tasks})
}

// List returns all upload tasks in enqueue order.
func (h *UploadHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": h.simulator.Tasks()})
}

// Get returns one upload task.
func (h *UploadHandler) Get(c *gin.Context) {
	task, err := h.simulator.Task(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Upload task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Cancel discards an upload task and stops its progress timer.
func (h *UploadHandler) Cancel(c *gin.Context) {
	if err := h.simulator.Cancel(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Upload task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel upload"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Upload cancelled"})
}
