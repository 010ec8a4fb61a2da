// Package types provides the request, result and shape types of the AWS CodeDeploy API,
// together with its enumerations.
//
// Every type is a plain value holder. Scalar members are pointers and nil means the member
// is absent; enum members use the zero value "" for absence. Each type has:
//
//   - SetX methods that assign a member and return the receiver, so calls can be chained.
//     Slice setters store a copy of their argument; passing nil clears the member.
//   - AddX methods that append to a slice member.
//   - Equal and HashCode, derived from the declared members in order.
//   - String, a diagnostic rendering such as {applicationName: "app"}. It is not a wire format.
//
// Request types also provide Validate, which checks documented service constraints locally.
// Nothing in this package validates on assignment.
//
// Values are meant for a single owner. Concurrent mutation of one value is undefined.
//
// Example:
//
//	req := (&types.CreateDeploymentRequest{}).
//	  SetApplicationName("my-app").
//	  SetDeploymentGroupName("prod").
//	  SetRevision(&types.RevisionLocation{RevisionType: types.RevisionLocationTypeS3})
//	if err := req.Validate(); err != nil {
//	  log.Printf("request will be rejected: %v", err)
//	}
package types
