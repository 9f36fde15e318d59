package constants

const (
	ROLE_ADMIN = "ADMIN"
)

// Order / payment state
const (
	ORDER_STATUS_PENDING   = "pending"
	PAYMENT_STATUS_PENDING = "pending"
	PAYMENT_METHOD_VIETQR  = "vietqr"
	CURRENCY_VND           = "vnd"
	SESSION_ID_PREFIX      = "VQRSID-"
)

// Provider blocks
const (
	BLOCK_MANUAL = "manual"
	BLOCK_VIETQR = "vietqr"

	METHOD_COD           = "cod"
	METHOD_BANK_TRANSFER = "bankTransfer"
	METHOD_IN_STORE      = "inStore"
	METHOD_OTHER         = "other"

	TEMPLATE_COMPACT  = "compact"
	TEMPLATE_COMPACT2 = "compact2"
	TEMPLATE_QR_ONLY  = "qr_only"
	TEMPLATE_PRINT    = "print"

	DEFAULT_VIETQR_INSTRUCTIONS = "Please scan the QR code with your banking app to complete the payment."
)

// Thông báo lỗi
const (
	ERROR_INTERNAL_ERROR       = "Lỗi hệ thống"
	ERROR_INPUT                = "Dữ liệu không hợp lệ"
	ERROR_CREATE               = "Tạo mới thất bại"
	ERROR_EDIT                 = "Cập nhật thất bại"
	ERROR_PARSE_DATA_TO_LOCALS = "Không thể đọc dữ liệu đầu vào"
	DATA_INPUT_IS_NOT_NUMBER   = "Dữ liệu đầu vào không phải là số"
	NOT_ADMIN                  = "Chỉ admin được phép"
	NOT_FOUND_RECORDS          = "Không tìm thấy dữ liệu"
	MISSING_LOGIN_INPUT        = "Thiếu tên đăng nhập hoặc mật khẩu"
	INVALID_USERNAME           = "Tên đăng nhập không tồn tại"
	INVALID_PASSWORD           = "Mật khẩu không đúng"
	ACCOUNT_NOT_ACTIVE         = "Tài khoản đã bị khóa"
	MISSING_ORDER_FILTER       = "Thiếu bộ lọc sessionId"
	PAYMENT_CONFIG_NOT_FOUND   = "Không tìm thấy cấu hình thanh toán"
	ERROR_DELETE               = "Xoá thất bại"
	DUPLICATE_CHECKOUT         = "Đơn hàng với Idempotency-Key này đang được xử lý"
)

// Customer-facing payment page messages
const (
	MSG_ORDER_NOT_FOUND        = "Order not found. Please check your order ID."
	MSG_FETCH_FAILED           = "Failed to fetch order details"
	MSG_LOAD_FAILED            = "Failed to load payment details"
	MSG_LOOKUP_TIMEOUT         = "Timed out loading payment details"
	MSG_VIETQR_INFO_NOT_FOUND  = "VietQR payment information not found in order"
	MSG_PAYMENT_DESCRIPTION_FM = "Payment for order %s"
)
