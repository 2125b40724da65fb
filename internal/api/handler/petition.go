package handler

import (
	"net/http"

	"voicebox/backend/internal/models"
	"voicebox/backend/internal/petition"

	"github.com/gin-gonic/gin"
)

// petitionView decorates a petition with its read-side derivations.
type petitionView struct {
	models.Petition
	ProgressPercent float64 `json:"progress_percent"`
	IsTrending      bool    `json:"is_trending"`
	IsSuccessful    bool    `json:"is_successful"`
}

func toView(p models.Petition) petitionView {
	return petitionView{
		Petition:        p,
		ProgressPercent: petition.ProgressPercent(&p),
		IsTrending:      petition.IsTrending(&p),
		IsSuccessful:    petition.IsSuccessful(&p),
	}
}

// CreatePetition starts a new signature drive.
func (h *Handler) CreatePetition(c *gin.Context) {
	var draft petition.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	created, err := h.Petitions.Create(draft, currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"petition": toView(*created)})
}

// ListPetitions returns all petitions, optionally filtered by ?search=.
func (h *Handler) ListPetitions(c *gin.Context) {
	petitions, err := h.Petitions.List(c.Query("search"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	views := make([]petitionView, 0, len(petitions))
	for _, p := range petitions {
		views = append(views, toView(p))
	}
	c.JSON(http.StatusOK, gin.H{"petitions": views})
}

// GetPetition returns one petition with its derived read-side fields.
func (h *Handler) GetPetition(c *gin.Context) {
	found, err := h.Petitions.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"petition": toView(*found)})
}

// SignPetition records the caller's signature. Signing twice is not an
// error; the response carries accepted=false and nothing changes.
func (h *Handler) SignPetition(c *gin.Context) {
	accepted, err := h.Petitions.Sign(c.Param("id"), currentUser(c).ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accepted": accepted})
}

// PetitionStats serves the aggregate petition counters.
func (h *Handler) PetitionStats(c *gin.Context) {
	stats, err := h.Petitions.Stats()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
