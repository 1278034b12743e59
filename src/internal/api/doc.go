// Package api provides the REST API server for managing the domain lists of a
// mail root.
//
// The API exposes the same operations as the apply command:
//   - Listing the users of the mail root
//   - Reading one list file of one user
//   - Adding domains to and removing domains from the lists of every
//     selected user
//   - Health checks
//
// Mutations go through lists.Manager, which serializes them, so concurrent
// requests never interleave writes to the same list file.
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "not_found",
//	    "message": "Human-readable error message",
//	    "details": { "error_code": "USER_NOT_FOUND" }
//	  }
//	}
package api
