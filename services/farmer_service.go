package services

import (
	"errors"

	"github.com/shivas758/yamkar4.1-sub001/config"
	"github.com/shivas758/yamkar4.1-sub001/models"
)

type FarmerInput struct {
	Name      string  `json:"name" binding:"required"`
	Phone     string  `json:"phone"`
	Crop      string  `json:"crop"`
	LandAcres float64 `json:"land_acres"`
	VillageID uint    `json:"village_id" binding:"required"`
}

func CreateFarmer(collectorID uint, input FarmerInput) (*models.Farmer, error) {
	farmer := models.Farmer{
		Name:        input.Name,
		Phone:       input.Phone,
		Crop:        input.Crop,
		LandAcres:   input.LandAcres,
		VillageID:   input.VillageID,
		CollectedBy: collectorID,
	}
	if err := config.DB.Create(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func UpdateFarmer(id, collectorID uint, isAdmin bool, input FarmerInput) (*models.Farmer, error) {
	var farmer models.Farmer
	if err := config.DB.First(&farmer, id).Error; err != nil {
		return nil, errors.New("farmer not found")
	}
	if !isAdmin && farmer.CollectedBy != collectorID {
		return nil, errors.New("farmer belongs to another collector")
	}

	farmer.Name = input.Name
	farmer.Phone = input.Phone
	farmer.Crop = input.Crop
	farmer.LandAcres = input.LandAcres
	farmer.VillageID = input.VillageID
	if err := config.DB.Save(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

// ListFarmers filters by collector and/or village; zero means no filter.
func ListFarmers(collectorID, villageID uint) ([]models.Farmer, error) {
	q := config.DB.Model(&models.Farmer{})
	if collectorID != 0 {
		q = q.Where("collected_by = ?", collectorID)
	}
	if villageID != 0 {
		q = q.Where("village_id = ?", villageID)
	}

	var farmers []models.Farmer
	err := q.Order("name ASC").Find(&farmers).Error
	return farmers, err
}

func GetFarmer(id uint) (*models.Farmer, error) {
	var farmer models.Farmer
	if err := config.DB.First(&farmer, id).Error; err != nil {
		return nil, errors.New("farmer not found")
	}
	return &farmer, nil
}
