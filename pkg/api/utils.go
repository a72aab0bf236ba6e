package api

import (
	"fmt"

	"github.com/voidshard/cooker/internal/utils"
	"github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/structs"
)

// validateRefs checks asset references, dropping duplicates
func validateRefs(in []*structs.AssetRef) ([]*structs.AssetRef, error) {
	seen := map[string]bool{}
	out := []*structs.AssetRef{}
	for _, r := range in {
		if r == nil {
			continue
		}
		if !utils.IsValidID(r.ID) {
			return nil, fmt.Errorf("%w %s", errors.ErrInvalidArg, r.ID)
		}
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, &structs.AssetRef{ID: r.ID})
	}
	return out, nil
}

// validateQuery checks a journal query
func validateQuery(q *structs.Query) error {
	if q == nil {
		return fmt.Errorf("%w nil query", errors.ErrInvalidArg)
	}
	for _, id := range append(append([]string{}, q.ClientIDs...), q.RequestIDs...) {
		if !utils.IsValidID(id) {
			return fmt.Errorf("%w %s", errors.ErrInvalidArg, id)
		}
	}
	for _, k := range q.Kinds {
		if structs.ToTaskKind(string(k)) == "" {
			return fmt.Errorf("%w task kind %s", errors.ErrInvalidArg, k)
		}
	}
	for _, s := range q.States {
		if structs.ToTaskState(string(s)) == "" {
			return fmt.Errorf("%w task state %s", errors.ErrInvalidArg, s)
		}
	}
	if q.CreatedBefore > 0 && q.CreatedAfter > 0 && q.CreatedBefore < q.CreatedAfter {
		return fmt.Errorf("%w created_before is before created_after", errors.ErrInvalidArg)
	}
	q.Sanitize()
	return nil
}
