package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is a funding proposal owned by exactly one innovator.
//
// Likes and InterestedInvestors are sets of investor ids. Uniqueness is
// enforced at the storage boundary with atomic set-membership updates, never
// with an in-process read-modify-write.
type Project struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Industry            string    `json:"industry"`
	ProjectStage        string    `json:"projectStage"`
	FundingNeeded       float64   `json:"fundingNeeded"`
	InnovatorID         string    `json:"innovatorId"`
	Likes               []string  `json:"likes"`
	InterestedInvestors []string  `json:"interestedInvestors"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// HasLiked reports whether the investor id is currently in the likes set.
func (p *Project) HasLiked(investorID string) bool {
	for _, id := range p.Likes {
		if id == investorID {
			return true
		}
	}
	return false
}
