package handlers

import (
	"github.com/gin-gonic/gin"

	"medscribe-server/internal/catalog"
	"medscribe-server/internal/utils"
)

// MedicineHandler serves the medicine catalog and its filtered lookups.
type MedicineHandler struct {
	Catalog *catalog.Catalog
}

// NewMedicineHandler creates a new MedicineHandler.
func NewMedicineHandler(cat *catalog.Catalog) *MedicineHandler {
	return &MedicineHandler{Catalog: cat}
}

// List returns every medicine in the catalog.
func (h *MedicineHandler) List(c *gin.Context) {
	utils.Success(c, "Medicines retrieved successfully", h.Catalog.Entries())
}

// Search returns the medicines whose name contains the query string,
// case-insensitively. Without a query the full catalog is returned.
func (h *MedicineHandler) Search(c *gin.Context) {
	query := c.Query("query")
	utils.Success(c, "Medicines retrieved successfully", h.Catalog.SearchByName(query))
}

// Groups returns the published therapeutic group labels.
func (h *MedicineHandler) Groups(c *gin.Context) {
	utils.Success(c, "Medicine groups retrieved successfully", gin.H{
		"groups": h.Catalog.Groups(),
	})
}

// Companies returns the published pharmaceutical company labels.
func (h *MedicineHandler) Companies(c *gin.Context) {
	utils.Success(c, "Medicine companies retrieved successfully", gin.H{
		"companies": h.Catalog.Companies(),
	})
}

// ByGroup returns the medicines in a specific therapeutic group.
func (h *MedicineHandler) ByGroup(c *gin.Context) {
	group := c.Param("group")
	utils.Success(c, "Medicines retrieved successfully", h.Catalog.FilterByGroup(group))
}

// ByCompany returns the medicines from a specific pharmaceutical company.
func (h *MedicineHandler) ByCompany(c *gin.Context) {
	company := c.Param("company")
	utils.Success(c, "Medicines retrieved successfully", h.Catalog.FilterByCompany(company))
}
