package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	heromodels "io.myazahq.khalidlifestyle/internal/models/hero_media"
	"io.myazahq.khalidlifestyle/internal/projection"
)

// HeroMedia returns the shuffled media pool for the landing page carousel
func (h *EventHandler) HeroMedia(c *gin.Context) {
	events, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		h.logError(c, err, "failed to build hero media")
		c.JSON(http.StatusBadGateway, heromodels.HeroMediaResponse{Error: "Failed to load media"})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	media := projection.Shuffle(projection.HeroMedia(events), rng)

	c.JSON(http.StatusOK, heromodels.HeroMediaResponse{Media: media})
}
