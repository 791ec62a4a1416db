// =================================================================================
// This file is auto-generated by the GoFrame CLI tool. You may modify it as you wish.
// =================================================================================

package dao

import (
	"media-clip-service/internal/dao/internal"
)

// clipDao is the data access object for the table clip.
// You can define custom methods on it to extend its functionality as needed.
type clipDao struct {
	*internal.ClipDao
}

var (
	// Clip is a globally accessible object for table clip operations.
	Clip = clipDao{internal.NewClipDao()}
)

// Add your custom methods and functionality below.
