// Package entity contains the core business objects of the project.
package entity

// Platform identifies the external data source a record belongs to.
type Platform string

const (
	// PlatformShopee is the Shopee affiliate marketplace.
	PlatformShopee Platform = "shopee"
	// PlatformLazada is the Lazada affiliate marketplace.
	PlatformLazada Platform = "lazada"
	// PlatformFacebook is the Facebook advertising account.
	PlatformFacebook Platform = "facebook"
)

// MarketplacePlatforms lists the platforms that carry order records.
func MarketplacePlatforms() []Platform {
	return []Platform{PlatformShopee, PlatformLazada}
}

// Origin tags the provenance of a record: a manually imported export file
// or a live API sync. Once a record is normalized its origin never changes.
type Origin string

const (
	// OriginFileImport marks records parsed from an uploaded export file.
	OriginFileImport Origin = "file_import"
	// OriginAPISync marks records fetched from a platform API.
	OriginAPISync Origin = "api_sync"
)
