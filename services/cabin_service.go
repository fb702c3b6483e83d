package services

import (
	"errors"
	"sort"
	"strings"

	"cabin-backoffice/models"
	"cabin-backoffice/utils"

	"gorm.io/gorm"
)

// Discount filter sentinels for the cabins list view.
const (
	CabinFilterAll          = "all"
	CabinFilterNoDiscount   = "no-discount"
	CabinFilterWithDiscount = "with-discount"
)

type CabinService struct {
	DB *gorm.DB
}

func NewCabinService(db *gorm.DB) *CabinService {
	return &CabinService{DB: db}
}

// validateCabin enforces the schema constraints shared by create and update.
func validateCabin(cabin *models.Cabin) error {
	fields := map[string]string{}
	if strings.TrimSpace(cabin.Name) == "" {
		fields["name"] = "This field is required"
	}
	if cabin.MaxCapacity <= 0 {
		fields["maxCapacity"] = "Capacity should be at least 1"
	}
	if cabin.RegularPrice <= 0 {
		fields["regularPrice"] = "Regular price should be greater than 0"
	}
	if cabin.Discount < 0 {
		fields["discount"] = "Discount cannot be negative"
	} else if cabin.Discount >= cabin.RegularPrice {
		fields["discount"] = "Discount should be less than regular price"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *CabinService) Create(cabin *models.Cabin) error {
	if err := validateCabin(cabin); err != nil {
		return err
	}
	return s.DB.Create(cabin).Error
}

func (s *CabinService) GetAll() ([]models.Cabin, error) {
	var cabins []models.Cabin
	err := s.DB.Order("id ASC").Find(&cabins).Error
	return cabins, err
}

func (s *CabinService) GetByID(id uint) (models.Cabin, error) {
	var cabin models.Cabin
	if err := s.DB.First(&cabin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cabin{}, ErrNotFound
		}
		return models.Cabin{}, err
	}
	return cabin, nil
}

func (s *CabinService) Update(cabin *models.Cabin) error {
	if err := validateCabin(cabin); err != nil {
		return err
	}
	res := s.DB.Model(&models.Cabin{}).Where("id = ?", cabin.ID).Updates(map[string]interface{}{
		"name":          cabin.Name,
		"max_capacity":  cabin.MaxCapacity,
		"regular_price": cabin.RegularPrice,
		"discount":      cabin.Discount,
		"description":   cabin.Description,
		"image":         cabin.Image,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CabinService) Delete(id uint) error {
	return s.DB.Delete(&models.Cabin{}, id).Error
}

// Duplicate inserts a copy of an existing cabin under a derived name.
func (s *CabinService) Duplicate(id uint) (models.Cabin, error) {
	source, err := s.GetByID(id)
	if err != nil {
		return models.Cabin{}, err
	}

	dup := models.Cabin{
		Name:         CopyName(source.Name),
		MaxCapacity:  source.MaxCapacity,
		RegularPrice: source.RegularPrice,
		Discount:     source.Discount,
		Description:  source.Description,
		Image:        source.Image,
	}
	if err := s.DB.Create(&dup).Error; err != nil {
		return models.Cabin{}, err
	}
	return dup, nil
}

// CopyName derives the display name a duplicated record shows while the
// insert settles, and the name it is stored under.
func CopyName(name string) string {
	return "Copy of " + name
}

// FilterCabins narrows an already-fetched cabin list by the discount filter
// sentinel. Unknown values behave like "all".
func FilterCabins(cabins []models.Cabin, filter string) []models.Cabin {
	switch filter {
	case CabinFilterNoDiscount:
		out := make([]models.Cabin, 0, len(cabins))
		for _, c := range cabins {
			if c.Discount == 0 {
				out = append(out, c)
			}
		}
		return out
	case CabinFilterWithDiscount:
		out := make([]models.Cabin, 0, len(cabins))
		for _, c := range cabins {
			if c.Discount > 0 {
				out = append(out, c)
			}
		}
		return out
	default:
		return cabins
	}
}

// SortCabins orders a cabin list in place by a whitelisted field. Ties keep
// their original relative order.
func SortCabins(cabins []models.Cabin, order utils.SortOrder) {
	asc := order.Direction != "desc"

	less := func(a, b models.Cabin) bool { return a.Name < b.Name }
	switch order.Field {
	case "name":
		// default comparator
	case "regularPrice":
		less = func(a, b models.Cabin) bool { return a.RegularPrice < b.RegularPrice }
	case "maxCapacity":
		less = func(a, b models.Cabin) bool { return a.MaxCapacity < b.MaxCapacity }
	case "discount":
		less = func(a, b models.Cabin) bool { return a.Discount < b.Discount }
	default:
		return
	}

	sort.SliceStable(cabins, func(i, j int) bool {
		if asc {
			return less(cabins[i], cabins[j])
		}
		return less(cabins[j], cabins[i])
	})
}
