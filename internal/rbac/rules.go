package rbac

// Default policy. Students play stories; educators additionally reach the
// educator hub surfaces (resources, printables, everyone's results).
var RolePermissions = map[string][]string{
	"student": {
		"story:view",
		"session:create",
		"session:operate",
		"session:view-own",
	},
	"educator": {
		"story:view",
		"resources:view",
		"printable:view",
		"session:create",
		"session:operate",
		"session:view-own",
		"session:view-all",
	},
	"admin": {
		"*", // everything
	},
}
