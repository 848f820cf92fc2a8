package space

import "github.com/google/uuid"

// ProductPatch is one desired product in a space update payload. ID is nil
// for products the caller considers new.
type ProductPatch struct {
	ID    *uuid.UUID
	Type  ProductType
	Name  string
	Price int64
}

// ProductPlan is the explicit outcome of reconciling the desired product set
// against the current one: rows to insert, rows to update (reactivated if
// they were soft-deleted), and rows to soft-deactivate.
type ProductPlan struct {
	Create     []Product
	Update     []Product
	Deactivate []Product
}

// ReconcileProducts matches each desired product against current rows first
// by ID, then by type, keeping at most one active product per type. Current
// rows matched by nothing are deactivated, never deleted.
func ReconcileProducts(spaceID uuid.UUID, current []Product, desired []ProductPatch) (ProductPlan, error) {
	byID := make(map[uuid.UUID]Product, len(current))
	byType := make(map[ProductType]Product, len(current))
	for _, p := range current {
		byID[p.ID] = p
		byType[p.Type] = p
	}

	var plan ProductPlan
	processed := make(map[uuid.UUID]bool, len(current))

	for _, d := range desired {
		if !d.Type.IsValid() {
			return ProductPlan{}, ErrInvalidProduct
		}
		if d.Price < 0 {
			return ProductPlan{}, ErrNegativePrice
		}

		var match Product
		var found bool
		if d.ID != nil {
			match, found = byID[*d.ID]
		}
		if !found {
			match, found = byType[d.Type]
		}

		if found && !processed[match.ID] {
			processed[match.ID] = true
			match.Type = d.Type
			match.Name = d.Name
			match.Price = d.Price
			match.IsActive = true
			plan.Update = append(plan.Update, match)
			continue
		}

		created, err := NewProduct(spaceID, d.Type, d.Name, d.Price)
		if err != nil {
			return ProductPlan{}, err
		}
		plan.Create = append(plan.Create, created)
	}

	for _, p := range current {
		if processed[p.ID] || !p.IsActive {
			continue
		}
		p.IsActive = false
		plan.Deactivate = append(plan.Deactivate, p)
	}

	return plan, nil
}
