package github

// graphQLRequest is the POST body of a GraphQL call.
type graphQLRequest struct {
	Query string `json:"query"`
}

// graphQLError is one entry of a GraphQL errors payload.
type graphQLError struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// viewerLanguagesResponse is the wire shape of the viewer languages query.
type viewerLanguagesResponse struct {
	Data struct {
		Viewer struct {
			Repositories struct {
				Nodes []repositoryNode `json:"nodes"`
			} `json:"repositories"`
		} `json:"viewer"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type repositoryNode struct {
	Name       string `json:"name"`
	IsArchived bool   `json:"isArchived"`
	Languages  struct {
		Edges []languageEdge `json:"edges"`
	} `json:"languages"`
}

type languageEdge struct {
	Size int64 `json:"size"`
	Node struct {
		Name string `json:"name"`
	} `json:"node"`
}
