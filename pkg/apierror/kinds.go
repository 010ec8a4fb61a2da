package apierror

// Service error kinds, one per documented CodeDeploy error code.
const (
	KindAlarmsLimitExceeded                       Kind = "AlarmsLimitExceededException"
	KindApplicationAlreadyExists                  Kind = "ApplicationAlreadyExistsException"
	KindApplicationDoesNotExist                   Kind = "ApplicationDoesNotExistException"
	KindApplicationLimitExceeded                  Kind = "ApplicationLimitExceededException"
	KindApplicationNameRequired                   Kind = "ApplicationNameRequiredException"
	KindArnNotSupported                           Kind = "ArnNotSupportedException"
	KindBatchLimitExceeded                        Kind = "BatchLimitExceededException"
	KindBucketNameFilterRequired                  Kind = "BucketNameFilterRequiredException"
	KindDeploymentAlreadyCompleted                Kind = "DeploymentAlreadyCompletedException"
	KindDeploymentConfigAlreadyExists             Kind = "DeploymentConfigAlreadyExistsException"
	KindDeploymentConfigDoesNotExist              Kind = "DeploymentConfigDoesNotExistException"
	KindDeploymentConfigInUse                     Kind = "DeploymentConfigInUseException"
	KindDeploymentConfigLimitExceeded             Kind = "DeploymentConfigLimitExceededException"
	KindDeploymentConfigNameRequired              Kind = "DeploymentConfigNameRequiredException"
	KindDeploymentDoesNotExist                    Kind = "DeploymentDoesNotExistException"
	KindDeploymentGroupAlreadyExists              Kind = "DeploymentGroupAlreadyExistsException"
	KindDeploymentGroupDoesNotExist               Kind = "DeploymentGroupDoesNotExistException"
	KindDeploymentGroupLimitExceeded              Kind = "DeploymentGroupLimitExceededException"
	KindDeploymentGroupNameRequired               Kind = "DeploymentGroupNameRequiredException"
	KindDeploymentIdRequired                      Kind = "DeploymentIdRequiredException"
	KindDeploymentIsNotInReadyState               Kind = "DeploymentIsNotInReadyStateException"
	KindDeploymentLimitExceeded                   Kind = "DeploymentLimitExceededException"
	KindDeploymentNotStarted                      Kind = "DeploymentNotStartedException"
	KindDeploymentTargetDoesNotExist              Kind = "DeploymentTargetDoesNotExistException"
	KindDeploymentTargetIdRequired                Kind = "DeploymentTargetIdRequiredException"
	KindDeploymentTargetListSizeExceeded          Kind = "DeploymentTargetListSizeExceededException"
	KindDescriptionTooLong                        Kind = "DescriptionTooLongException"
	KindECSServiceMappingLimitExceeded            Kind = "ECSServiceMappingLimitExceededException"
	KindGitHubAccountTokenDoesNotExist            Kind = "GitHubAccountTokenDoesNotExistException"
	KindGitHubAccountTokenNameRequired            Kind = "GitHubAccountTokenNameRequiredException"
	KindIamArnRequired                            Kind = "IamArnRequiredException"
	KindIamSessionArnAlreadyRegistered            Kind = "IamSessionArnAlreadyRegisteredException"
	KindIamUserArnAlreadyRegistered               Kind = "IamUserArnAlreadyRegisteredException"
	KindIamUserArnRequired                        Kind = "IamUserArnRequiredException"
	KindInstanceDoesNotExist                      Kind = "InstanceDoesNotExistException"
	KindInstanceIdRequired                        Kind = "InstanceIdRequiredException"
	KindInstanceLimitExceeded                     Kind = "InstanceLimitExceededException"
	KindInstanceNameAlreadyRegistered             Kind = "InstanceNameAlreadyRegisteredException"
	KindInstanceNameRequired                      Kind = "InstanceNameRequiredException"
	KindInstanceNotRegistered                     Kind = "InstanceNotRegisteredException"
	KindInvalidAlarmConfig                        Kind = "InvalidAlarmConfigException"
	KindInvalidApplicationName                    Kind = "InvalidApplicationNameException"
	KindInvalidArn                                Kind = "InvalidArnException"
	KindInvalidAutoRollbackConfig                 Kind = "InvalidAutoRollbackConfigException"
	KindInvalidAutoScalingGroup                   Kind = "InvalidAutoScalingGroupException"
	KindInvalidBlueGreenDeploymentConfiguration   Kind = "InvalidBlueGreenDeploymentConfigurationException"
	KindInvalidBucketNameFilter                   Kind = "InvalidBucketNameFilterException"
	KindInvalidComputePlatform                    Kind = "InvalidComputePlatformException"
	KindInvalidDeployedStateFilter                Kind = "InvalidDeployedStateFilterException"
	KindInvalidDeploymentConfigName               Kind = "InvalidDeploymentConfigNameException"
	KindInvalidDeploymentGroupName                Kind = "InvalidDeploymentGroupNameException"
	KindInvalidDeploymentId                       Kind = "InvalidDeploymentIdException"
	KindInvalidDeploymentInstanceType             Kind = "InvalidDeploymentInstanceTypeException"
	KindInvalidDeploymentStatus                   Kind = "InvalidDeploymentStatusException"
	KindInvalidDeploymentStyle                    Kind = "InvalidDeploymentStyleException"
	KindInvalidDeploymentTargetId                 Kind = "InvalidDeploymentTargetIdException"
	KindInvalidDeploymentWaitType                 Kind = "InvalidDeploymentWaitTypeException"
	KindInvalidEC2TagCombination                  Kind = "InvalidEC2TagCombinationException"
	KindInvalidEC2Tag                             Kind = "InvalidEC2TagException"
	KindInvalidECSService                         Kind = "InvalidECSServiceException"
	KindInvalidExternalId                         Kind = "InvalidExternalIdException"
	KindInvalidFileExistsBehavior                 Kind = "InvalidFileExistsBehaviorException"
	KindInvalidGitHubAccountToken                 Kind = "InvalidGitHubAccountTokenException"
	KindInvalidGitHubAccountTokenName             Kind = "InvalidGitHubAccountTokenNameException"
	KindInvalidIamSessionArn                      Kind = "InvalidIamSessionArnException"
	KindInvalidIamUserArn                         Kind = "InvalidIamUserArnException"
	KindInvalidIgnoreApplicationStopFailuresValue Kind = "InvalidIgnoreApplicationStopFailuresValueException"
	KindInvalidInput                              Kind = "InvalidInputException"
	KindInvalidInstanceName                       Kind = "InvalidInstanceNameException"
	KindInvalidInstanceStatus                     Kind = "InvalidInstanceStatusException"
	KindInvalidInstanceType                       Kind = "InvalidInstanceTypeException"
	KindInvalidKeyPrefixFilter                    Kind = "InvalidKeyPrefixFilterException"
	KindInvalidLifecycleEventHookExecutionId      Kind = "InvalidLifecycleEventHookExecutionIdException"
	KindInvalidLifecycleEventHookExecutionStatus  Kind = "InvalidLifecycleEventHookExecutionStatusException"
	KindInvalidLoadBalancerInfo                   Kind = "InvalidLoadBalancerInfoException"
	KindInvalidMinimumHealthyHostValue            Kind = "InvalidMinimumHealthyHostValueException"
	KindInvalidNextToken                          Kind = "InvalidNextTokenException"
	KindInvalidOnPremisesTagCombination           Kind = "InvalidOnPremisesTagCombinationException"
	KindInvalidOperation                          Kind = "InvalidOperationException"
	KindInvalidRegistrationStatus                 Kind = "InvalidRegistrationStatusException"
	KindInvalidRevision                           Kind = "InvalidRevisionException"
	KindInvalidRole                               Kind = "InvalidRoleException"
	KindInvalidSortBy                             Kind = "InvalidSortByException"
	KindInvalidSortOrder                          Kind = "InvalidSortOrderException"
	KindInvalidTag                                Kind = "InvalidTagException"
	KindInvalidTagFilter                          Kind = "InvalidTagFilterException"
	KindInvalidTagsToAdd                          Kind = "InvalidTagsToAddException"
	KindInvalidTargetFilterName                   Kind = "InvalidTargetFilterNameException"
	KindInvalidTargetGroupPair                    Kind = "InvalidTargetGroupPairException"
	KindInvalidTargetInstances                    Kind = "InvalidTargetInstancesException"
	KindInvalidTimeRange                          Kind = "InvalidTimeRangeException"
	KindInvalidTrafficRoutingConfiguration        Kind = "InvalidTrafficRoutingConfigurationException"
	KindInvalidTriggerConfig                      Kind = "InvalidTriggerConfigException"
	KindInvalidUpdateOutdatedInstancesOnlyValue   Kind = "InvalidUpdateOutdatedInstancesOnlyValueException"
	KindLifecycleEventAlreadyCompleted            Kind = "LifecycleEventAlreadyCompletedException"
	KindLifecycleHookLimitExceeded                Kind = "LifecycleHookLimitExceededException"
	KindMultipleIamArnsProvided                   Kind = "MultipleIamArnsProvidedException"
	KindOperationNotSupported                     Kind = "OperationNotSupportedException"
	KindResourceArnRequired                       Kind = "ResourceArnRequiredException"
	KindResourceValidation                        Kind = "ResourceValidationException"
	KindRevisionDoesNotExist                      Kind = "RevisionDoesNotExistException"
	KindRevisionRequired                          Kind = "RevisionRequiredException"
	KindRoleRequired                              Kind = "RoleRequiredException"
	KindTagLimitExceeded                          Kind = "TagLimitExceededException"
	KindTagRequired                               Kind = "TagRequiredException"
	KindTagSetListLimitExceeded                   Kind = "TagSetListLimitExceededException"
	KindThrottling                                Kind = "ThrottlingException"
	KindTriggerTargetsLimitExceeded               Kind = "TriggerTargetsLimitExceededException"
	KindUnsupportedActionForDeploymentType        Kind = "UnsupportedActionForDeploymentTypeException"
)

var kinds = []Kind{
	KindAlarmsLimitExceeded,
	KindApplicationAlreadyExists,
	KindApplicationDoesNotExist,
	KindApplicationLimitExceeded,
	KindApplicationNameRequired,
	KindArnNotSupported,
	KindBatchLimitExceeded,
	KindBucketNameFilterRequired,
	KindDeploymentAlreadyCompleted,
	KindDeploymentConfigAlreadyExists,
	KindDeploymentConfigDoesNotExist,
	KindDeploymentConfigInUse,
	KindDeploymentConfigLimitExceeded,
	KindDeploymentConfigNameRequired,
	KindDeploymentDoesNotExist,
	KindDeploymentGroupAlreadyExists,
	KindDeploymentGroupDoesNotExist,
	KindDeploymentGroupLimitExceeded,
	KindDeploymentGroupNameRequired,
	KindDeploymentIdRequired,
	KindDeploymentIsNotInReadyState,
	KindDeploymentLimitExceeded,
	KindDeploymentNotStarted,
	KindDeploymentTargetDoesNotExist,
	KindDeploymentTargetIdRequired,
	KindDeploymentTargetListSizeExceeded,
	KindDescriptionTooLong,
	KindECSServiceMappingLimitExceeded,
	KindGitHubAccountTokenDoesNotExist,
	KindGitHubAccountTokenNameRequired,
	KindIamArnRequired,
	KindIamSessionArnAlreadyRegistered,
	KindIamUserArnAlreadyRegistered,
	KindIamUserArnRequired,
	KindInstanceDoesNotExist,
	KindInstanceIdRequired,
	KindInstanceLimitExceeded,
	KindInstanceNameAlreadyRegistered,
	KindInstanceNameRequired,
	KindInstanceNotRegistered,
	KindInvalidAlarmConfig,
	KindInvalidApplicationName,
	KindInvalidArn,
	KindInvalidAutoRollbackConfig,
	KindInvalidAutoScalingGroup,
	KindInvalidBlueGreenDeploymentConfiguration,
	KindInvalidBucketNameFilter,
	KindInvalidComputePlatform,
	KindInvalidDeployedStateFilter,
	KindInvalidDeploymentConfigName,
	KindInvalidDeploymentGroupName,
	KindInvalidDeploymentId,
	KindInvalidDeploymentInstanceType,
	KindInvalidDeploymentStatus,
	KindInvalidDeploymentStyle,
	KindInvalidDeploymentTargetId,
	KindInvalidDeploymentWaitType,
	KindInvalidEC2TagCombination,
	KindInvalidEC2Tag,
	KindInvalidECSService,
	KindInvalidExternalId,
	KindInvalidFileExistsBehavior,
	KindInvalidGitHubAccountToken,
	KindInvalidGitHubAccountTokenName,
	KindInvalidIamSessionArn,
	KindInvalidIamUserArn,
	KindInvalidIgnoreApplicationStopFailuresValue,
	KindInvalidInput,
	KindInvalidInstanceName,
	KindInvalidInstanceStatus,
	KindInvalidInstanceType,
	KindInvalidKeyPrefixFilter,
	KindInvalidLifecycleEventHookExecutionId,
	KindInvalidLifecycleEventHookExecutionStatus,
	KindInvalidLoadBalancerInfo,
	KindInvalidMinimumHealthyHostValue,
	KindInvalidNextToken,
	KindInvalidOnPremisesTagCombination,
	KindInvalidOperation,
	KindInvalidRegistrationStatus,
	KindInvalidRevision,
	KindInvalidRole,
	KindInvalidSortBy,
	KindInvalidSortOrder,
	KindInvalidTag,
	KindInvalidTagFilter,
	KindInvalidTagsToAdd,
	KindInvalidTargetFilterName,
	KindInvalidTargetGroupPair,
	KindInvalidTargetInstances,
	KindInvalidTimeRange,
	KindInvalidTrafficRoutingConfiguration,
	KindInvalidTriggerConfig,
	KindInvalidUpdateOutdatedInstancesOnlyValue,
	KindLifecycleEventAlreadyCompleted,
	KindLifecycleHookLimitExceeded,
	KindMultipleIamArnsProvided,
	KindOperationNotSupported,
	KindResourceArnRequired,
	KindResourceValidation,
	KindRevisionDoesNotExist,
	KindRevisionRequired,
	KindRoleRequired,
	KindTagLimitExceeded,
	KindTagRequired,
	KindTagSetListLimitExceeded,
	KindThrottling,
	KindTriggerTargetsLimitExceeded,
	KindUnsupportedActionForDeploymentType,
}
