package types

var operations = []Operation{
	{
		Name:       "AddTagsToOnPremisesInstances",
		NewRequest: func() Request { return &AddTagsToOnPremisesInstancesRequest{} },
		NewResult:  func() Result { return &AddTagsToOnPremisesInstancesResult{} },
	},
	{
		Name:       "BatchGetApplicationRevisions",
		NewRequest: func() Request { return &BatchGetApplicationRevisionsRequest{} },
		NewResult:  func() Result { return &BatchGetApplicationRevisionsResult{} },
	},
	{
		Name:       "BatchGetApplications",
		NewRequest: func() Request { return &BatchGetApplicationsRequest{} },
		NewResult:  func() Result { return &BatchGetApplicationsResult{} },
	},
	{
		Name:       "BatchGetDeploymentGroups",
		NewRequest: func() Request { return &BatchGetDeploymentGroupsRequest{} },
		NewResult:  func() Result { return &BatchGetDeploymentGroupsResult{} },
	},
	{
		Name:       "BatchGetDeploymentInstances",
		NewRequest: func() Request { return &BatchGetDeploymentInstancesRequest{} },
		NewResult:  func() Result { return &BatchGetDeploymentInstancesResult{} },
	},
	{
		Name:       "BatchGetDeploymentTargets",
		NewRequest: func() Request { return &BatchGetDeploymentTargetsRequest{} },
		NewResult:  func() Result { return &BatchGetDeploymentTargetsResult{} },
	},
	{
		Name:       "BatchGetDeployments",
		NewRequest: func() Request { return &BatchGetDeploymentsRequest{} },
		NewResult:  func() Result { return &BatchGetDeploymentsResult{} },
	},
	{
		Name:       "BatchGetOnPremisesInstances",
		NewRequest: func() Request { return &BatchGetOnPremisesInstancesRequest{} },
		NewResult:  func() Result { return &BatchGetOnPremisesInstancesResult{} },
	},
	{
		Name:       "ContinueDeployment",
		NewRequest: func() Request { return &ContinueDeploymentRequest{} },
		NewResult:  func() Result { return &ContinueDeploymentResult{} },
	},
	{
		Name:       "CreateApplication",
		NewRequest: func() Request { return &CreateApplicationRequest{} },
		NewResult:  func() Result { return &CreateApplicationResult{} },
	},
	{
		Name:       "CreateDeployment",
		NewRequest: func() Request { return &CreateDeploymentRequest{} },
		NewResult:  func() Result { return &CreateDeploymentResult{} },
	},
	{
		Name:       "CreateDeploymentConfig",
		NewRequest: func() Request { return &CreateDeploymentConfigRequest{} },
		NewResult:  func() Result { return &CreateDeploymentConfigResult{} },
	},
	{
		Name:       "CreateDeploymentGroup",
		NewRequest: func() Request { return &CreateDeploymentGroupRequest{} },
		NewResult:  func() Result { return &CreateDeploymentGroupResult{} },
	},
	{
		Name:       "DeleteApplication",
		NewRequest: func() Request { return &DeleteApplicationRequest{} },
		NewResult:  func() Result { return &DeleteApplicationResult{} },
	},
	{
		Name:       "DeleteDeploymentConfig",
		NewRequest: func() Request { return &DeleteDeploymentConfigRequest{} },
		NewResult:  func() Result { return &DeleteDeploymentConfigResult{} },
	},
	{
		Name:       "DeleteDeploymentGroup",
		NewRequest: func() Request { return &DeleteDeploymentGroupRequest{} },
		NewResult:  func() Result { return &DeleteDeploymentGroupResult{} },
	},
	{
		Name:       "DeleteGitHubAccountToken",
		NewRequest: func() Request { return &DeleteGitHubAccountTokenRequest{} },
		NewResult:  func() Result { return &DeleteGitHubAccountTokenResult{} },
	},
	{
		Name:       "DeleteResourcesByExternalId",
		NewRequest: func() Request { return &DeleteResourcesByExternalIdRequest{} },
		NewResult:  func() Result { return &DeleteResourcesByExternalIdResult{} },
	},
	{
		Name:       "DeregisterOnPremisesInstance",
		NewRequest: func() Request { return &DeregisterOnPremisesInstanceRequest{} },
		NewResult:  func() Result { return &DeregisterOnPremisesInstanceResult{} },
	},
	{
		Name:       "GetApplication",
		NewRequest: func() Request { return &GetApplicationRequest{} },
		NewResult:  func() Result { return &GetApplicationResult{} },
	},
	{
		Name:       "GetApplicationRevision",
		NewRequest: func() Request { return &GetApplicationRevisionRequest{} },
		NewResult:  func() Result { return &GetApplicationRevisionResult{} },
	},
	{
		Name:       "GetDeployment",
		NewRequest: func() Request { return &GetDeploymentRequest{} },
		NewResult:  func() Result { return &GetDeploymentResult{} },
	},
	{
		Name:       "GetDeploymentConfig",
		NewRequest: func() Request { return &GetDeploymentConfigRequest{} },
		NewResult:  func() Result { return &GetDeploymentConfigResult{} },
	},
	{
		Name:       "GetDeploymentGroup",
		NewRequest: func() Request { return &GetDeploymentGroupRequest{} },
		NewResult:  func() Result { return &GetDeploymentGroupResult{} },
	},
	{
		Name:       "GetDeploymentInstance",
		NewRequest: func() Request { return &GetDeploymentInstanceRequest{} },
		NewResult:  func() Result { return &GetDeploymentInstanceResult{} },
	},
	{
		Name:       "GetDeploymentTarget",
		NewRequest: func() Request { return &GetDeploymentTargetRequest{} },
		NewResult:  func() Result { return &GetDeploymentTargetResult{} },
	},
	{
		Name:       "GetOnPremisesInstance",
		NewRequest: func() Request { return &GetOnPremisesInstanceRequest{} },
		NewResult:  func() Result { return &GetOnPremisesInstanceResult{} },
	},
	{
		Name:       "ListApplicationRevisions",
		NewRequest: func() Request { return &ListApplicationRevisionsRequest{} },
		NewResult:  func() Result { return &ListApplicationRevisionsResult{} },
	},
	{
		Name:       "ListApplications",
		NewRequest: func() Request { return &ListApplicationsRequest{} },
		NewResult:  func() Result { return &ListApplicationsResult{} },
	},
	{
		Name:       "ListDeploymentConfigs",
		NewRequest: func() Request { return &ListDeploymentConfigsRequest{} },
		NewResult:  func() Result { return &ListDeploymentConfigsResult{} },
	},
	{
		Name:       "ListDeploymentGroups",
		NewRequest: func() Request { return &ListDeploymentGroupsRequest{} },
		NewResult:  func() Result { return &ListDeploymentGroupsResult{} },
	},
	{
		Name:       "ListDeploymentInstances",
		NewRequest: func() Request { return &ListDeploymentInstancesRequest{} },
		NewResult:  func() Result { return &ListDeploymentInstancesResult{} },
	},
	{
		Name:       "ListDeploymentTargets",
		NewRequest: func() Request { return &ListDeploymentTargetsRequest{} },
		NewResult:  func() Result { return &ListDeploymentTargetsResult{} },
	},
	{
		Name:       "ListDeployments",
		NewRequest: func() Request { return &ListDeploymentsRequest{} },
		NewResult:  func() Result { return &ListDeploymentsResult{} },
	},
	{
		Name:       "ListGitHubAccountTokenNames",
		NewRequest: func() Request { return &ListGitHubAccountTokenNamesRequest{} },
		NewResult:  func() Result { return &ListGitHubAccountTokenNamesResult{} },
	},
	{
		Name:       "ListOnPremisesInstances",
		NewRequest: func() Request { return &ListOnPremisesInstancesRequest{} },
		NewResult:  func() Result { return &ListOnPremisesInstancesResult{} },
	},
	{
		Name:       "ListTagsForResource",
		NewRequest: func() Request { return &ListTagsForResourceRequest{} },
		NewResult:  func() Result { return &ListTagsForResourceResult{} },
	},
	{
		Name:       "PutLifecycleEventHookExecutionStatus",
		NewRequest: func() Request { return &PutLifecycleEventHookExecutionStatusRequest{} },
		NewResult:  func() Result { return &PutLifecycleEventHookExecutionStatusResult{} },
	},
	{
		Name:       "RegisterApplicationRevision",
		NewRequest: func() Request { return &RegisterApplicationRevisionRequest{} },
		NewResult:  func() Result { return &RegisterApplicationRevisionResult{} },
	},
	{
		Name:       "RegisterOnPremisesInstance",
		NewRequest: func() Request { return &RegisterOnPremisesInstanceRequest{} },
		NewResult:  func() Result { return &RegisterOnPremisesInstanceResult{} },
	},
	{
		Name:       "RemoveTagsFromOnPremisesInstances",
		NewRequest: func() Request { return &RemoveTagsFromOnPremisesInstancesRequest{} },
		NewResult:  func() Result { return &RemoveTagsFromOnPremisesInstancesResult{} },
	},
	{
		Name:       "SkipWaitTimeForInstanceTermination",
		NewRequest: func() Request { return &SkipWaitTimeForInstanceTerminationRequest{} },
		NewResult:  func() Result { return &SkipWaitTimeForInstanceTerminationResult{} },
	},
	{
		Name:       "StopDeployment",
		NewRequest: func() Request { return &StopDeploymentRequest{} },
		NewResult:  func() Result { return &StopDeploymentResult{} },
	},
	{
		Name:       "TagResource",
		NewRequest: func() Request { return &TagResourceRequest{} },
		NewResult:  func() Result { return &TagResourceResult{} },
	},
	{
		Name:       "UntagResource",
		NewRequest: func() Request { return &UntagResourceRequest{} },
		NewResult:  func() Result { return &UntagResourceResult{} },
	},
	{
		Name:       "UpdateApplication",
		NewRequest: func() Request { return &UpdateApplicationRequest{} },
		NewResult:  func() Result { return &UpdateApplicationResult{} },
	},
	{
		Name:       "UpdateDeploymentGroup",
		NewRequest: func() Request { return &UpdateDeploymentGroupRequest{} },
		NewResult:  func() Result { return &UpdateDeploymentGroupResult{} },
	},
}
