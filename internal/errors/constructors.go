package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *EmeraldError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(field, reason string) *EmeraldError {
	return New(CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

func UnknownTemplate(id string) *EmeraldError {
	return New(CategoryConfig, SeverityFatal, "unknown template").
		WithContext("template", id)
}

func AssetSourceUnreadable(path string, cause error) *EmeraldError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "asset source unreadable").
		WithContext("path", path)
}

// Host model errors

func ModelInvalid(entity, reason string) *EmeraldError {
	return New(CategoryModel, SeverityFatal, "malformed entity").
		WithContext("entity", entity).
		WithContext("reason", reason)
}

func PathCollision(path string, first, second string) *EmeraldError {
	return New(CategoryModel, SeverityFatal, "output path collision").
		WithContext("path", path).
		WithContext("first", first).
		WithContext("second", second)
}

// Output errors

func CreateDirFailed(path string, cause error) *EmeraldError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "create directory failed").
		WithContext("path", path)
}

func WriteFailed(path string, cause error) *EmeraldError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "write failed").
		WithContext("path", path)
}

func RenderFailed(entity string, cause error) *EmeraldError {
	return Wrap(cause, CategoryRender, SeverityFatal, "render failed").
		WithContext("entity", entity)
}

// Runtime errors

func Canceled(stage string, cause error) *EmeraldError {
	return Wrap(cause, CategoryCanceled, SeverityFatal, "generation canceled").
		WithContext("stage", stage)
}

func InternalError(message string, cause error) *EmeraldError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
