// Package dto holds the JSON shapes of the HTTP API.
package dto

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

const (
	BADREQUEST ErrorCode = "BAD_REQUEST"
	NOTFOUND   ErrorCode = "NOT_FOUND"
	TEAMEXISTS ErrorCode = "TEAM_EXISTS"
	INTERNAL   ErrorCode = "INTERNAL"
)

// ErrorBody is the inner error payload.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse wraps every error returned by the API.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Member is a member with its weekly availability.
type Member struct {
	MemberId     string `json:"member_id" form:"member_id"`
	Availability []int  `json:"availability" form:"availability"`
}

// Team lists member ids under a team name.
type Team struct {
	TeamName string   `json:"team_name" form:"team_name"`
	Members  []string `json:"members" form:"members"`
}

// TeamAvailability is the aggregated availability of one team.
type TeamAvailability struct {
	TeamName     string `json:"team_name"`
	Availability []int  `json:"availability"`
}

// TeamAvailabilityList is the aggregated availability of all teams, sorted by name.
type TeamAvailabilityList struct {
	Teams []TeamAvailability `json:"teams"`
}

// PostMembersSetJSONRequestBody is the body of POST /members/set.
type PostMembersSetJSONRequestBody = Member

// PostTeamAddJSONRequestBody is the body of POST /team/add.
type PostTeamAddJSONRequestBody = Team

// GetTeamGetParams are the query parameters of GET /team/get.
type GetTeamGetParams struct {
	TeamName string `query:"team_name"`
}

// GetTeamAvailabilityParams are the query parameters of GET /team/availability.
type GetTeamAvailabilityParams struct {
	TeamName string `query:"team_name"`
}

// GetMembersGetParams are the query parameters of GET /members/get.
type GetMembersGetParams struct {
	MemberId string `query:"member_id"`
}
