package handler

import (
	"errors"
	"net/http"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/domain"
	"github.com/aditi25bce10868-blip/NexusPrime/internal/service"
)

// ItemHandler handles item CRUD HTTP requests.
type ItemHandler struct {
	items *service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(items *service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// HandleList returns items, optionally filtered.
// GET /items?category=&search=
// Response: 200 {"status":"success","count":N,"data":{"items":[...]}}
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := domain.ItemFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	items, err := h.items.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	dtos := toItemDTOs(items)
	writeSuccess(w, http.StatusOK, map[string]any{"items": dtos},
		map[string]any{"count": len(dtos)})
}

// HandleGet returns a single item.
// GET /items/{id}
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"item": toItemDTO(item)}, nil)
}

// HandleCreate creates an item owned by the authenticated user.
// POST /items
// Request:  {"name":"...","description":"...","price":12.5,"category":"..."}
// Response: 201 {"status":"success","data":{"item":{...}}}
func (h *ItemHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Category    string   `json:"category"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.items.Create(r.Context(), SubjectFromContext(r.Context()), service.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"item": toItemDTO(item)}, nil)
}

// HandleUpdate applies a partial update to an item owned by the authenticated
// user. Absent fields stay untouched; present fields overwrite, including
// explicit empty strings and zero prices.
// PUT /items/{id}
func (h *ItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.items.Update(r.Context(), r.PathValue("id"), SubjectFromContext(r.Context()),
		domain.ItemUpdate{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
		})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"item": toItemDTO(item)}, nil)
}

// HandleDelete removes an item owned by the authenticated user.
// DELETE /items/{id}
// Response: 200 {"status":"success","message":"Item deleted successfully"}
func (h *ItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.items.Delete(r.Context(), r.PathValue("id"), SubjectFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Item deleted successfully",
	})
}
