package site

// StageName is a strongly-typed identifier for a generation stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageValidate      StageName = "validate"
	StagePrepareOutput StageName = "prepare_output"
	StageCopyAssets    StageName = "copy_assets"
	StageRenderFiles   StageName = "render_files"
	StageRenderTypes   StageName = "render_types"
	StageIndex         StageName = "index"
	StageVerifyLinks   StageName = "verify_links"
)

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}
