package application

import "github.com/graysonarts/jdexmd/internal/domain"

// Re-export hierarchy types for use by adapters
type (
	Node       = domain.Node
	ID         = domain.ID
	Plan       = domain.Plan
	Action     = domain.Action
	Level      = domain.Level
	Kind       = domain.Kind
	ActionType = domain.ActionType
	Content    = domain.Content
)

// Re-export level and kind enums for use by adapters
const (
	LevelSystem   = domain.LevelSystem
	LevelArea     = domain.LevelArea
	LevelCategory = domain.LevelCategory
	LevelFolder   = domain.LevelFolder
	LevelXFolder  = domain.LevelXFolder

	KindFolder        = domain.KindFolder
	KindNote          = domain.KindNote
	KindFolderAndNote = domain.KindFolderAndNote
	KindIndex         = domain.KindIndex
)

// Re-export plan enums for use by adapters
const (
	ActionCreateDir = domain.ActionCreateDir
	ActionWriteFile = domain.ActionWriteFile
	ActionSkip      = domain.ActionSkip

	ContentNone  = domain.ContentNone
	ContentNote  = domain.ContentNote
	ContentIndex = domain.ContentIndex
)

// BuildSystems runs the pre-flight half of the pipeline: parse the hierarchy
// text and resolve identifiers. Any error here means zero filesystem actions.
func BuildSystems(hierarchy, systemID, systemName string) ([]*domain.Node, []string, error) {
	systems, err := domain.ParseHierarchy(hierarchy, systemID, systemName)
	if err != nil {
		return nil, nil, err
	}
	warnings, err := domain.Resolve(systems)
	if err != nil {
		return nil, nil, err
	}
	return systems, warnings, nil
}
