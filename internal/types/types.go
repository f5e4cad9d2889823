// =============================================================================
// WhiteSource CSV Agent - Shared Types
// =============================================================================
//
// This package contains the data model shared by every stage of the pipeline.
// Types defined here are used by:
//   - csvparser / xlsxparser (produce submissions)
//   - inventory (sends submissions, returns results)
//   - report (prints results)
//
// =============================================================================

package types

import "fmt"

// =============================================================================
// DEPENDENCY TYPES
// =============================================================================

// Dependency is a single (group, artifact, version) component identifier
// extracted from one input row. All three fields are non-blank.
type Dependency struct {
	// GroupID is the first column of the row (e.g. "org.apache.commons").
	GroupID string `json:"groupId" yaml:"groupId"`

	// ArtifactID is the second column of the row (e.g. "commons-lang3").
	ArtifactID string `json:"artifactId" yaml:"artifactId"`

	// Version is the third column of the row (e.g. "3.12.0").
	Version string `json:"version" yaml:"version"`
}

// String returns the dependency in group:artifact:version form.
func (d Dependency) String() string {
	return fmt.Sprintf("%s:%s:%s", d.GroupID, d.ArtifactID, d.Version)
}

// ProjectSubmission is the full set of dependencies plus the token that
// identifies the target project in the inventory service.
type ProjectSubmission struct {
	// ProjectToken identifies the project being updated.
	ProjectToken string `json:"projectToken" yaml:"projectToken"`

	// Dependencies holds the valid rows, in file order.
	Dependencies []Dependency `json:"dependencies" yaml:"dependencies"`
}

// NewProjectSubmission returns an empty submission for the given project.
func NewProjectSubmission(projectToken string) *ProjectSubmission {
	return &ProjectSubmission{
		ProjectToken: projectToken,
		Dependencies: []Dependency{},
	}
}

// Add appends a dependency, preserving insertion order.
func (p *ProjectSubmission) Add(dep Dependency) {
	p.Dependencies = append(p.Dependencies, dep)
}

// =============================================================================
// RESULT TYPES
// =============================================================================

// SubmissionResult is the outcome reported by the inventory service.
type SubmissionResult struct {
	// Organization is the name of the organization owning the API key.
	Organization string `json:"organization"`

	// CreatedProjects lists projects the update created.
	CreatedProjects []string `json:"createdProjects"`

	// UpdatedProjects lists existing projects the update modified.
	UpdatedProjects []string `json:"updatedProjects"`
}
