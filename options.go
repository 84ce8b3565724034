package pdfact

import (
	"context"
	"log/slog"

	"github.com/tsawler/pdfact/config"
	"github.com/tsawler/pdfact/model"
)

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Output filtering.
	excludeHeaders bool
	excludeFooters bool
	roles          []model.SemanticRole

	// Processing.
	config *config.Config
	logger *slog.Logger
	ctx    context.Context
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		excludeHeaders: false,
		excludeFooters: false,
		roles:          nil, // nil means all roles
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		excludeHeaders: o.excludeHeaders,
		excludeFooters: o.excludeFooters,
		config:         o.config,
		logger:         o.logger,
		ctx:            o.ctx,
	}

	if o.roles != nil {
		newOpts.roles = make([]model.SemanticRole, len(o.roles))
		copy(newOpts.roles, o.roles)
	}

	return newOpts
}

// selectedRoles returns the roles to output after exclusions. all is true
// when no filter applies.
func (o ExtractOptions) selectedRoles() (roles []model.SemanticRole, all bool) {
	if !o.excludeHeaders && !o.excludeFooters {
		return o.roles, len(o.roles) == 0
	}

	candidates := o.roles
	if len(candidates) == 0 {
		candidates = append(model.Roles(), model.RoleUnset)
	}
	selected := make([]model.SemanticRole, 0, len(candidates))
	for _, r := range candidates {
		if o.excludeHeaders && r == model.RolePageHeader {
			continue
		}
		if o.excludeFooters && r == model.RolePageFooter {
			continue
		}
		selected = append(selected, r)
	}
	return selected, false
}
