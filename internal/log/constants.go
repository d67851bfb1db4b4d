package log

const (
	KeyAppName       = "app"
	KeyTag           = "tag"
	KeyProcess       = "process"
	KeyConfig        = "config"
	KeyRequestID     = "requestId"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyDbURL         = "dbURL"
	KeyCacheKey      = "cacheKey"
	KeyCartKey       = "cartKey"
	KeySessionID     = "sessionId"
	KeyCategoryID    = "categoryId"
	KeyProductID     = "productId"
	KeyCustomerID    = "customerId"
	KeyOrderID       = "orderId"
	KeyOrderNumber   = "orderNumber"
	KeyOrderStatus   = "orderStatus"
	KeySettingKey    = "settingKey"
	KeyToken         = "token"
)
