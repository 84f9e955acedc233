// Package messages is the catalog of user-facing API messages. Handlers pick
// from here so wording stays consistent across endpoints.
package messages

// Success messages.
const (
	LoginSuccessful  = "Successfully logged in."
	SignupSuccessful = "Successfully signed up."

	CompanyCreated   = "New company has been successfully created."
	CompanyUpdated   = "Company details have been successfully updated."
	CompanyDeleted   = "Company has been successfully deleted."
	CompanyRetrieved = "Companies have been successfully retrieved."

	GasCreated   = "New gas has been successfully created."
	GasUpdated   = "Gas details have been successfully updated."
	GasDeleted   = "Gas has been successfully deleted."
	GasRetrieved = "Gases have been successfully retrieved."

	OrderCreated   = "Order created successfully."
	OrderUpdated   = "Order updated successfully."
	OrderDeleted   = "Order deleted successfully."
	OrderRetrieved = "Order retrieved successfully."

	OrderItemCreated   = "Order item created successfully."
	OrderItemUpdated   = "Order item updated successfully."
	OrderItemDeleted   = "Order item deleted successfully."
	OrderItemRetrieved = "Order item retrieved successfully."

	OrderStatusRetrieved = "Order statuses retrieved successfully."

	UserCreated   = "New user has been successfully created."
	UserUpdated   = "User details have been successfully updated."
	UserDeleted   = "User has been successfully deleted."
	UserRetrieved = "Users retrieved successfully."

	RoleRetrieved = "Roles have been successfully retrieved."

	InsightsFetched = "Insights fetched successfully."

	HealthOK = "pong"
)

// Error messages.
const (
	BadRequest    = "Bad request."
	Unauthorized  = "Unauthorized access."
	Forbidden     = "Forbidden action."
	NotFound      = "Resource not found."
	InternalError = "Internal server error."
	RequiredField = "This field is required."

	InvalidCredentials = "Invalid credentials provided."
	InvalidToken       = "Invalid or expired token."
	EmailAlreadyExists = "Email is already registered."

	NotAdmin  = "Action requires administrator privileges."
	NotStaff  = "Action requires staff privileges."
	NotDriver = "Action requires driver privileges."

	CompanyNotFound   = "Company not found."
	CompanyNameExists = "Company with this name already exists."

	GasNotFound   = "Gas not found."
	GasNameExists = "Gas with this name already exists."

	OrderNotFound       = "Order not found."
	MinimumItemRequired = "At least one item is required in an order."
	AreaRequired        = "Area cannot be empty."

	OrderItemNotFound = "Order item not found."
	InvalidQuantity   = "Quantity must be a positive number."

	UserNotFound = "User not found."
	RoleNotFound = "Role not found."

	StatusNotFound = "Order status not found."
)
