package rbac

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

type RolePermission struct {
	Role     string
	Resource string
	Action   string
}
