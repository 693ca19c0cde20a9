package validators

import (
	"errors"
	"slices"

	"therapyhq/practice-api/model"
)

var (
	ErrRoleInvalid = errors.New("invalid role provided")
	ErrPlanInvalid = errors.New("invalid plan provided")
)

var (
	validRoles = []string{model.RoleTherapist, model.RoleAssistant, model.RoleOwner}
	validPlans = []string{model.PlanFree, model.PlanPro, model.PlanOrg}
)

func RoleValidator(r string) error {
	if !slices.Contains(validRoles, r) {
		return ErrRoleInvalid
	}

	return nil
}

func PlanValidator(p string) error {
	if p != "" && !slices.Contains(validPlans, p) {
		return ErrPlanInvalid
	}

	return nil
}
