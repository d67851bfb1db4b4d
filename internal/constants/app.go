package constants

const (
	AppMainEticaret      = "eticaret"
	AppStorefrontService = "storefront-service"
	AppAdminService      = "admin-service"

	AudienceAdmin = "audience-admin"
)
