package domain

// Permission is a workspace-scoped access grant attached to a membership row
type Permission string

const (
	PermissionFullAccess Permission = "FULL_ACCESS"
	PermissionCanEdit    Permission = "CAN_EDIT"
	PermissionCanView    Permission = "CAN_VIEW"
	PermissionReadOnly   Permission = "READ_ONLY"
)

// Valid reports whether p is a known permission level
func (p Permission) Valid() bool {
	switch p {
	case PermissionFullAccess, PermissionCanEdit, PermissionCanView, PermissionReadOnly:
		return true
	}
	return false
}
