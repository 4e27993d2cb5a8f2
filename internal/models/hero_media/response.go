package models

import (
	"io.myazahq.khalidlifestyle/internal/projection"
)

type HeroMediaResponse struct {
	Media []projection.HeroItem `json:"media"`
	Error string                `json:"error,omitempty"`
}
