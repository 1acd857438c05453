package githubapi

// RepositoryType filters the repositories of the authenticated user.
type RepositoryType string

// Repository type enumerations.
const (
	RepositoryTypeAll     RepositoryType = "all"
	RepositoryTypeOwner   RepositoryType = "owner"
	RepositoryTypePublic  RepositoryType = "public"
	RepositoryTypePrivate RepositoryType = "private"
	RepositoryTypeMember  RepositoryType = "member"
)

// RepositorySort orders the repositories of the authenticated user.
type RepositorySort string

// Repository sort enumerations.
const (
	RepositorySortCreated  RepositorySort = "created"
	RepositorySortUpdated  RepositorySort = "updated"
	RepositorySortPushed   RepositorySort = "pushed"
	RepositorySortFullName RepositorySort = "full_name"
)

var repositoryTypes = map[string]RepositoryType{
	string(RepositoryTypeAll):     RepositoryTypeAll,
	string(RepositoryTypeOwner):   RepositoryTypeOwner,
	string(RepositoryTypePublic):  RepositoryTypePublic,
	string(RepositoryTypePrivate): RepositoryTypePrivate,
	string(RepositoryTypeMember):  RepositoryTypeMember,
}

var repositorySorts = map[string]RepositorySort{
	string(RepositorySortCreated):  RepositorySortCreated,
	string(RepositorySortUpdated):  RepositorySortUpdated,
	string(RepositorySortPushed):   RepositorySortPushed,
	string(RepositorySortFullName): RepositorySortFullName,
}

// ParseRepositoryType maps a filter name onto RepositoryType, defaulting to RepositoryTypeAll.
func ParseRepositoryType(value string) RepositoryType {
	if repositoryType, known := repositoryTypes[value]; known {
		return repositoryType
	}
	return RepositoryTypeAll
}

// ParseRepositorySort maps a sort name onto RepositorySort, defaulting to RepositorySortUpdated.
func ParseRepositorySort(value string) RepositorySort {
	if repositorySort, known := repositorySorts[value]; known {
		return repositorySort
	}
	return RepositorySortUpdated
}

// RepositoryListOptions is encoded into the GET /user/repos query string.
type RepositoryListOptions struct {
	Type    RepositoryType `url:"type,omitempty"`
	Sort    RepositorySort `url:"sort,omitempty"`
	PerPage int            `url:"per_page,omitempty"`
}

// IssueListOptions narrows an issue listing.
type IssueListOptions struct {
	State   string
	PerPage int
}

// IssueCreateRequest describes a new issue.
type IssueCreateRequest struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
}
