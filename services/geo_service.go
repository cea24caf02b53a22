package services

import (
	"github.com/shivas758/yamkar4.1-sub001/config"
	"github.com/shivas758/yamkar4.1-sub001/models"
)

func ListStates() ([]models.State, error) {
	var states []models.State
	err := config.DB.Order("name ASC").Find(&states).Error
	return states, err
}

func ListDistricts(stateID uint) ([]models.District, error) {
	var districts []models.District
	err := config.DB.Where("state_id = ?", stateID).Order("name ASC").Find(&districts).Error
	return districts, err
}

func ListMandals(districtID uint) ([]models.Mandal, error) {
	var mandals []models.Mandal
	err := config.DB.Where("district_id = ?", districtID).Order("name ASC").Find(&mandals).Error
	return mandals, err
}

func ListVillages(mandalID uint) ([]models.Village, error) {
	var villages []models.Village
	err := config.DB.Where("mandal_id = ?", mandalID).Order("name ASC").Find(&villages).Error
	return villages, err
}
