package entities

// Caller аутентифицированный пользователь запроса. Токен выпускает внешний сервис.
type Caller struct {
	ID   string
	Role Role
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
	RoleShipper  Role = "shipper"
	RoleOperator Role = "operator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleOwner, RoleShipper, RoleOperator:
		return true
	}
	return false
}

func (c Caller) Is(role Role) bool {
	return c.Role == role
}
