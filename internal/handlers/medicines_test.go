package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"medscribe-server/internal/catalog"
)

func TestListMedicines(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/medicines", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []catalog.Entry
	decodeData(t, w, &entries)
	assert.Len(t, entries, 14)
	assert.Equal(t, catalog.Entry{ID: "med-1", Name: "Amoxicillin 250mg"}, entries[0])
}

func TestSearchMedicines_AnyCasing(t *testing.T) {
	router := newTestRouter()

	for _, query := range []string{"lisin", "LISIN", "Lisin"} {
		w := doJSON(t, router, http.MethodGet, "/medicines/search?query="+query, nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		var entries []catalog.Entry
		decodeData(t, w, &entries)
		assert.Len(t, entries, 3, "query %q", query)
		for _, e := range entries {
			assert.True(t, strings.HasPrefix(e.Name, "Lisinopril"), "query %q returned %q", query, e.Name)
		}
	}
}

func TestSearchMedicines_EmptyQueryReturnsAll(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/medicines/search", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []catalog.Entry
	decodeData(t, w, &entries)
	assert.Len(t, entries, 14)
}

func TestMedicinesByGroup_Statin(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/medicines/by-group/Statin", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var medicines []catalog.Medicine
	decodeData(t, w, &medicines)
	assert.Len(t, medicines, 4)
	for _, m := range medicines {
		assert.True(t, strings.HasPrefix(m.Name, "Atorvastatin"))
		assert.Equal(t, "Pfizer", m.Company)
	}
}

func TestMedicinesByGroup_WithSpaceInLabel(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/medicines/by-group/ACE%20Inhibitor", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var medicines []catalog.Medicine
	decodeData(t, w, &medicines)
	assert.Len(t, medicines, 3)
	for _, m := range medicines {
		assert.True(t, strings.HasPrefix(m.Name, "Lisinopril"))
	}
}

func TestMedicinesByGroup_UnknownIsEmptyNotError(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/medicines/by-group/Placebo", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var medicines []catalog.Medicine
	decodeData(t, w, &medicines)
	assert.Empty(t, medicines)
}

func TestMedicinesByCompany(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/medicines/by-company/AstraZeneca", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var medicines []catalog.Medicine
	decodeData(t, w, &medicines)
	assert.Len(t, medicines, 3)
	for _, m := range medicines {
		assert.Equal(t, "ACE Inhibitor", m.Group)
	}
}

func TestMedicineGroupsAndCompanies(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/medicines/groups", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var groupsPayload struct {
		Groups []string `json:"groups"`
	}
	decodeData(t, w, &groupsPayload)
	assert.Len(t, groupsPayload.Groups, 12)
	assert.Contains(t, groupsPayload.Groups, "ACE Inhibitor")

	w = doJSON(t, router, http.MethodGet, "/medicines/companies", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var companiesPayload struct {
		Companies []string `json:"companies"`
	}
	decodeData(t, w, &companiesPayload)
	assert.Len(t, companiesPayload.Companies, 10)
	assert.Contains(t, companiesPayload.Companies, "Pfizer")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UP", body["status"])
}
