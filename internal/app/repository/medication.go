package repository

import (
	"time"

	"healthtracker/internal/app/ds"
)

// ListMedications возвращает все лекарства, новые первыми
func (r *Repository) ListMedications() ([]ds.Medication, error) {
	var meds []ds.Medication
	err := r.db.Order("created_at DESC").Find(&meds).Error
	if err != nil {
		return nil, err
	}
	return meds, nil
}

func (r *Repository) GetMedication(id string) (*ds.Medication, error) {
	var med ds.Medication
	err := r.db.Where("id = ?", id).First(&med).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &med, nil
}

func (r *Repository) CreateMedication(med *ds.Medication) error {
	return r.db.Create(med).Error
}

// UpdateMedication частично обновляет запись и возвращает её актуальное состояние
func (r *Repository) UpdateMedication(id string, fields map[string]interface{}) (*ds.Medication, error) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["updated_at"] = time.Now()

	res := r.db.Model(&ds.Medication{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetMedication(id)
}

func (r *Repository) MarkMedicationTaken(id string, at time.Time) (*ds.Medication, error) {
	return r.UpdateMedication(id, map[string]interface{}{"last_taken": at})
}

func (r *Repository) UpdateMedicationImage(id, key string) error {
	_, err := r.UpdateMedication(id, map[string]interface{}{"image_key": key})
	return err
}

// DeleteMedication удаляет запись и возвращает её, чтобы вызывающий мог убрать изображение
func (r *Repository) DeleteMedication(id string) (*ds.Medication, error) {
	med, err := r.GetMedication(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&ds.Medication{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return med, nil
}

func (r *Repository) DeleteAllMedications() error {
	return r.db.Exec("DELETE FROM medications").Error
}
