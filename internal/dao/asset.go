// =================================================================================
// This file is auto-generated by the GoFrame CLI tool. You may modify it as you wish.
// =================================================================================

package dao

import (
	"media-clip-service/internal/dao/internal"
)

// assetDao is the data access object for the table asset.
// You can define custom methods on it to extend its functionality as needed.
type assetDao struct {
	*internal.AssetDao
}

var (
	// Asset is a globally accessible object for table asset operations.
	Asset = assetDao{internal.NewAssetDao()}
)

// Add your custom methods and functionality below.
