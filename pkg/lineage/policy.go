package lineage

import (
	"fmt"

	"github.com/aigovhub/lineage/pkg/config"
	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
)

// CheckSelfDependency applies policy to a dependency whose parent and child may be the
// same model. Edges between distinct models always pass.
func CheckSelfDependency(policy config.SelfDependencyPolicy, dependency *entities.ModelDependency) *contract.Error {
	if dependency.ParentModelID != dependency.ChildModelID {
		return nil
	}

	switch policy {
	case config.SelfDependencyAllow:
		return nil
	case config.SelfDependencyReject:
		return contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			fmt.Sprintf("model %d cannot depend on itself", dependency.ChildModelID),
		)
	case config.SelfDependencyRejectSameVersion:
		if dependency.ParentVersionID != nil && dependency.ChildVersionID != nil &&
			*dependency.ParentVersionID != *dependency.ChildVersionID {
			return nil
		}

		return contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			fmt.Sprintf(
				"model %d can only depend on itself between two distinct versions"+
					" (parent_version_id and child_version_id must both be set and differ)",
				dependency.ChildModelID,
			),
		)
	default:
		return contract.NewError(
			contract.ErrorCodeInternalError,
			fmt.Sprintf("unknown self dependency policy %q", policy),
		)
	}
}
