package helpers

import "github.com/campusperks/campusperks-api/libs/go/constants"

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// IsDeployedStage reports whether the stage runs on AWS infrastructure
// (Secrets Manager, SQS) rather than local fallbacks.
func IsDeployedStage(stage string) bool {
	return stage == StageProd || stage == StageDev
}
