package dto

import (
	"time"

	"safar/internal/domains/packages/model"
)

type CreatePackageRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Type        string   `json:"type"        validate:"required"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Duration    string   `json:"duration"    validate:"omitempty"`
	Features    []string `json:"features"    validate:"omitempty"`
	ImageURL    string   `json:"imageUrl"    validate:"omitempty"`
}

// ToModel builds a package record. New packages are visible immediately.
func (r *CreatePackageRequest) ToModel(id string, createdAt time.Time) model.Package {
	return model.Package{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Price:       r.Price,
		Duration:    r.Duration,
		Features:    r.Features,
		ImageURL:    r.ImageURL,
		Active:      true,
		CreatedAt:   createdAt,
	}
}

type CreatePackageResponse struct {
	Success bool          `json:"success"`
	Package model.Package `json:"package"`
}

type PackagesResponse struct {
	Packages []model.Package `json:"packages"`
}

func (r *PackagesResponse) FromModels(packages []model.Package) {
	r.Packages = packages
}

type PackageResponse struct {
	Package model.Package `json:"package"`
}
