package db

import (
	"log"

	"github.com/vectorhealth/hospital-management/models"
)

// Seed installs the default roles and permissions used by the RBAC
// middleware. Existing rows are left untouched so reseeding is safe.
func Seed() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "doctor", Description: "Practitioner who manages appointments"},
		{Name: "patient", Description: "Patient who books appointments"},
		{Name: "staff", Description: "Hospital staff who request equipment"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	resources := []string{
		"users", "roles", "permissions",
		"doctors", "patients", "appointments", "working-hours",
		"equipment", "requests", "returns",
	}
	actions := []string{"create", "read", "update", "delete"}

	for _, resource := range resources {
		for _, action := range actions {
			name := action + "_" + resource
			var existing models.Permission
			if DB.Where("name = ?", name).First(&existing).RowsAffected == 0 {
				DB.Create(&models.Permission{
					Name:     name,
					Resource: resource,
					Action:   action,
				})
			}
		}
	}

	assignAll("admin", func(*models.Permission) bool { return true })
	assignAll("doctor", func(p *models.Permission) bool {
		switch p.Resource {
		case "appointments", "working-hours":
			return true
		case "patients":
			return p.Action == "read"
		}
		return false
	})
	assignAll("patient", func(p *models.Permission) bool {
		return p.Resource == "appointments" && p.Action != "delete"
	})
	assignAll("staff", func(p *models.Permission) bool {
		switch p.Resource {
		case "requests", "returns":
			return p.Action == "create" || p.Action == "read"
		case "equipment":
			return p.Action == "read"
		}
		return false
	})

	log.Println("✅ Default roles and permissions seeded")
}

func assignAll(roleName string, keep func(*models.Permission) bool) {
	var role models.Role
	if DB.Where("name = ?", roleName).First(&role).RowsAffected == 0 {
		return
	}

	var all []models.Permission
	DB.Find(&all)

	granted := make([]models.Permission, 0, len(all))
	for i := range all {
		if keep(&all[i]) {
			granted = append(granted, all[i])
		}
	}

	if err := DB.Model(&role).Association("Permissions").Replace(granted); err != nil {
		log.Printf("Failed to assign permissions to role %s: %v", roleName, err)
	}
}
