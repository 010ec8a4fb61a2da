package types

// ApplicationRevisionSortBy is the column used to order ListApplicationRevisions results.
type ApplicationRevisionSortBy string

// Enum values for ApplicationRevisionSortBy
const (
	ApplicationRevisionSortByRegisterTime  ApplicationRevisionSortBy = "registerTime"
	ApplicationRevisionSortByFirstUsedTime ApplicationRevisionSortBy = "firstUsedTime"
	ApplicationRevisionSortByLastUsedTime  ApplicationRevisionSortBy = "lastUsedTime"
)

var applicationRevisionSortBySet = newEnumSet("ApplicationRevisionSortBy",
	ApplicationRevisionSortByRegisterTime,
	ApplicationRevisionSortByFirstUsedTime,
	ApplicationRevisionSortByLastUsedTime,
)

// Values returns every ApplicationRevisionSortBy in declaration order.
func (ApplicationRevisionSortBy) Values() []ApplicationRevisionSortBy {
	return applicationRevisionSortBySet.list()
}

func (v ApplicationRevisionSortBy) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v ApplicationRevisionSortBy) Known() bool {
	return applicationRevisionSortBySet.known(v)
}

// ParseApplicationRevisionSortBy returns the ApplicationRevisionSortBy whose wire string is s.
func ParseApplicationRevisionSortBy(s string) (ApplicationRevisionSortBy, error) {
	return applicationRevisionSortBySet.parse(s)
}

// AutoRollbackEvent is an event type that triggers an automatic rollback.
type AutoRollbackEvent string

// Enum values for AutoRollbackEvent
const (
	AutoRollbackEventDeploymentFailure       AutoRollbackEvent = "DEPLOYMENT_FAILURE"
	AutoRollbackEventDeploymentStopOnAlarm   AutoRollbackEvent = "DEPLOYMENT_STOP_ON_ALARM"
	AutoRollbackEventDeploymentStopOnRequest AutoRollbackEvent = "DEPLOYMENT_STOP_ON_REQUEST"
)

var autoRollbackEventSet = newEnumSet("AutoRollbackEvent",
	AutoRollbackEventDeploymentFailure,
	AutoRollbackEventDeploymentStopOnAlarm,
	AutoRollbackEventDeploymentStopOnRequest,
)

// Values returns every AutoRollbackEvent in declaration order.
func (AutoRollbackEvent) Values() []AutoRollbackEvent {
	return autoRollbackEventSet.list()
}

func (v AutoRollbackEvent) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v AutoRollbackEvent) Known() bool {
	return autoRollbackEventSet.known(v)
}

// ParseAutoRollbackEvent returns the AutoRollbackEvent whose wire string is s.
func ParseAutoRollbackEvent(s string) (AutoRollbackEvent, error) {
	return autoRollbackEventSet.parse(s)
}

// BundleType is the file type of an application revision stored in Amazon S3.
type BundleType string

// Enum values for BundleType
const (
	BundleTypeTar  BundleType = "tar"
	BundleTypeTgz  BundleType = "tgz"
	BundleTypeZip  BundleType = "zip"
	BundleTypeYAML BundleType = "YAML"
	BundleTypeJSON BundleType = "JSON"
)

var bundleTypeSet = newEnumSet("BundleType",
	BundleTypeTar,
	BundleTypeTgz,
	BundleTypeZip,
	BundleTypeYAML,
	BundleTypeJSON,
)

// Values returns every BundleType in declaration order.
func (BundleType) Values() []BundleType {
	return bundleTypeSet.list()
}

func (v BundleType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v BundleType) Known() bool {
	return bundleTypeSet.known(v)
}

// ParseBundleType returns the BundleType whose wire string is s.
func ParseBundleType(s string) (BundleType, error) {
	return bundleTypeSet.parse(s)
}

// ComputePlatform is the destination platform type for a deployment.
type ComputePlatform string

// Enum values for ComputePlatform
const (
	ComputePlatformServer ComputePlatform = "Server"
	ComputePlatformLambda ComputePlatform = "Lambda"
	ComputePlatformECS    ComputePlatform = "ECS"
)

var computePlatformSet = newEnumSet("ComputePlatform",
	ComputePlatformServer,
	ComputePlatformLambda,
	ComputePlatformECS,
)

// Values returns every ComputePlatform in declaration order.
func (ComputePlatform) Values() []ComputePlatform {
	return computePlatformSet.list()
}

func (v ComputePlatform) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v ComputePlatform) Known() bool {
	return computePlatformSet.known(v)
}

// ParseComputePlatform returns the ComputePlatform whose wire string is s.
func ParseComputePlatform(s string) (ComputePlatform, error) {
	return computePlatformSet.parse(s)
}

// DeploymentCreator is the means by which a deployment was created.
type DeploymentCreator string

// Enum values for DeploymentCreator
const (
	DeploymentCreatorUser                   DeploymentCreator = "user"
	DeploymentCreatorAutoscaling            DeploymentCreator = "autoscaling"
	DeploymentCreatorCodeDeployRollback     DeploymentCreator = "codeDeployRollback"
	DeploymentCreatorCodeDeploy             DeploymentCreator = "CodeDeploy"
	DeploymentCreatorCloudFormation         DeploymentCreator = "CloudFormation"
	DeploymentCreatorCloudFormationRollback DeploymentCreator = "CloudFormationRollback"
)

var deploymentCreatorSet = newEnumSet("DeploymentCreator",
	DeploymentCreatorUser,
	DeploymentCreatorAutoscaling,
	DeploymentCreatorCodeDeployRollback,
	DeploymentCreatorCodeDeploy,
	DeploymentCreatorCloudFormation,
	DeploymentCreatorCloudFormationRollback,
)

// Values returns every DeploymentCreator in declaration order.
func (DeploymentCreator) Values() []DeploymentCreator {
	return deploymentCreatorSet.list()
}

func (v DeploymentCreator) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v DeploymentCreator) Known() bool {
	return deploymentCreatorSet.known(v)
}

// ParseDeploymentCreator returns the DeploymentCreator whose wire string is s.
func ParseDeploymentCreator(s string) (DeploymentCreator, error) {
	return deploymentCreatorSet.parse(s)
}

// DeploymentOption says whether to route deployment traffic behind a load balancer.
type DeploymentOption string

// Enum values for DeploymentOption
const (
	DeploymentOptionWithTrafficControl    DeploymentOption = "WITH_TRAFFIC_CONTROL"
	DeploymentOptionWithoutTrafficControl DeploymentOption = "WITHOUT_TRAFFIC_CONTROL"
)

var deploymentOptionSet = newEnumSet("DeploymentOption",
	DeploymentOptionWithTrafficControl,
	DeploymentOptionWithoutTrafficControl,
)

// Values returns every DeploymentOption in declaration order.
func (DeploymentOption) Values() []DeploymentOption {
	return deploymentOptionSet.list()
}

func (v DeploymentOption) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v DeploymentOption) Known() bool {
	return deploymentOptionSet.known(v)
}

// ParseDeploymentOption returns the DeploymentOption whose wire string is s.
func ParseDeploymentOption(s string) (DeploymentOption, error) {
	return deploymentOptionSet.parse(s)
}

type DeploymentReadyAction string

// Enum values for DeploymentReadyAction
const (
	DeploymentReadyActionContinueDeployment DeploymentReadyAction = "CONTINUE_DEPLOYMENT"
	DeploymentReadyActionStopDeployment     DeploymentReadyAction = "STOP_DEPLOYMENT"
)

var deploymentReadyActionSet = newEnumSet("DeploymentReadyAction",
	DeploymentReadyActionContinueDeployment,
	DeploymentReadyActionStopDeployment,
)

// Values returns every DeploymentReadyAction in declaration order.
func (DeploymentReadyAction) Values() []DeploymentReadyAction {
	return deploymentReadyActionSet.list()
}

func (v DeploymentReadyAction) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v DeploymentReadyAction) Known() bool {
	return deploymentReadyActionSet.known(v)
}

// ParseDeploymentReadyAction returns the DeploymentReadyAction whose wire string is s.
func ParseDeploymentReadyAction(s string) (DeploymentReadyAction, error) {
	return deploymentReadyActionSet.parse(s)
}

// DeploymentStatus is the state of a deployment as a whole.
type DeploymentStatus string

// Enum values for DeploymentStatus
const (
	DeploymentStatusCreated    DeploymentStatus = "Created"
	DeploymentStatusQueued     DeploymentStatus = "Queued"
	DeploymentStatusInProgress DeploymentStatus = "InProgress"
	DeploymentStatusBaking     DeploymentStatus = "Baking"
	DeploymentStatusSucceeded  DeploymentStatus = "Succeeded"
	DeploymentStatusFailed     DeploymentStatus = "Failed"
	DeploymentStatusStopped    DeploymentStatus = "Stopped"
	DeploymentStatusReady      DeploymentStatus = "Ready"
)

var deploymentStatusSet = newEnumSet("DeploymentStatus",
	DeploymentStatusCreated,
	DeploymentStatusQueued,
	DeploymentStatusInProgress,
	DeploymentStatusBaking,
	DeploymentStatusSucceeded,
	DeploymentStatusFailed,
	DeploymentStatusStopped,
	DeploymentStatusReady,
)

// Values returns every DeploymentStatus in declaration order.
func (DeploymentStatus) Values() []DeploymentStatus {
	return deploymentStatusSet.list()
}

func (v DeploymentStatus) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v DeploymentStatus) Known() bool {
	return deploymentStatusSet.known(v)
}

// ParseDeploymentStatus returns the DeploymentStatus whose wire string is s.
func ParseDeploymentStatus(s string) (DeploymentStatus, error) {
	return deploymentStatusSet.parse(s)
}

// DeploymentTargetType identifies which target member of a DeploymentTarget is set.
type DeploymentTargetType string

// Enum values for DeploymentTargetType
const (
	DeploymentTargetTypeInstanceTarget       DeploymentTargetType = "InstanceTarget"
	DeploymentTargetTypeLambdaTarget         DeploymentTargetType = "LambdaTarget"
	DeploymentTargetTypeECSTarget            DeploymentTargetType = "ECSTarget"
	DeploymentTargetTypeCloudFormationTarget DeploymentTargetType = "CloudFormationTarget"
)

var deploymentTargetTypeSet = newEnumSet("DeploymentTargetType",
	DeploymentTargetTypeInstanceTarget,
	DeploymentTargetTypeLambdaTarget,
	DeploymentTargetTypeECSTarget,
	DeploymentTargetTypeCloudFormationTarget,
)

// Values returns every DeploymentTargetType in declaration order.
func (DeploymentTargetType) Values() []DeploymentTargetType {
	return deploymentTargetTypeSet.list()
}

func (v DeploymentTargetType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v DeploymentTargetType) Known() bool {
	return deploymentTargetTypeSet.known(v)
}

// ParseDeploymentTargetType returns the DeploymentTargetType whose wire string is s.
func ParseDeploymentTargetType(s string) (DeploymentTargetType, error) {
	return deploymentTargetTypeSet.parse(s)
}

// DeploymentType is in-place or blue/green.
type DeploymentType string

// Enum values for DeploymentType
const (
	DeploymentTypeInPlace   DeploymentType = "IN_PLACE"
	DeploymentTypeBlueGreen DeploymentType = "BLUE_GREEN"
)

var deploymentTypeSet = newEnumSet("DeploymentType",
	DeploymentTypeInPlace,
	DeploymentTypeBlueGreen,
)

// Values returns every DeploymentType in declaration order.
func (DeploymentType) Values() []DeploymentType {
	return deploymentTypeSet.list()
}

func (v DeploymentType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v DeploymentType) Known() bool {
	return deploymentTypeSet.known(v)
}

// ParseDeploymentType returns the DeploymentType whose wire string is s.
func ParseDeploymentType(s string) (DeploymentType, error) {
	return deploymentTypeSet.parse(s)
}

type DeploymentWaitType string

// Enum values for DeploymentWaitType
const (
	DeploymentWaitTypeReadyWait       DeploymentWaitType = "READY_WAIT"
	DeploymentWaitTypeTerminationWait DeploymentWaitType = "TERMINATION_WAIT"
)

var deploymentWaitTypeSet = newEnumSet("DeploymentWaitType",
	DeploymentWaitTypeReadyWait,
	DeploymentWaitTypeTerminationWait,
)

// Values returns every DeploymentWaitType in declaration order.
func (DeploymentWaitType) Values() []DeploymentWaitType {
	return deploymentWaitTypeSet.list()
}

func (v DeploymentWaitType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v DeploymentWaitType) Known() bool {
	return deploymentWaitTypeSet.known(v)
}

// ParseDeploymentWaitType returns the DeploymentWaitType whose wire string is s.
func ParseDeploymentWaitType(s string) (DeploymentWaitType, error) {
	return deploymentWaitTypeSet.parse(s)
}

// EC2TagFilterType is the match mode of an EC2TagFilter.
type EC2TagFilterType string

// Enum values for EC2TagFilterType
const (
	EC2TagFilterTypeKeyOnly     EC2TagFilterType = "KEY_ONLY"
	EC2TagFilterTypeValueOnly   EC2TagFilterType = "VALUE_ONLY"
	EC2TagFilterTypeKeyAndValue EC2TagFilterType = "KEY_AND_VALUE"
)

var ec2TagFilterTypeSet = newEnumSet("EC2TagFilterType",
	EC2TagFilterTypeKeyOnly,
	EC2TagFilterTypeValueOnly,
	EC2TagFilterTypeKeyAndValue,
)

// Values returns every EC2TagFilterType in declaration order.
func (EC2TagFilterType) Values() []EC2TagFilterType {
	return ec2TagFilterTypeSet.list()
}

func (v EC2TagFilterType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v EC2TagFilterType) Known() bool {
	return ec2TagFilterTypeSet.known(v)
}

// ParseEC2TagFilterType returns the EC2TagFilterType whose wire string is s.
func ParseEC2TagFilterType(s string) (EC2TagFilterType, error) {
	return ec2TagFilterTypeSet.parse(s)
}

// ErrorCode is the error code attached to a failed deployment's ErrorInformation.
type ErrorCode string

// Enum values for ErrorCode
const (
	ErrorCodeAgentIssue                              ErrorCode = "AGENT_ISSUE"
	ErrorCodeAlarmActive                             ErrorCode = "ALARM_ACTIVE"
	ErrorCodeApplicationMissing                      ErrorCode = "APPLICATION_MISSING"
	ErrorCodeAutoscalingValidationError              ErrorCode = "AUTOSCALING_VALIDATION_ERROR"
	ErrorCodeAutoScalingConfiguration                ErrorCode = "AUTO_SCALING_CONFIGURATION"
	ErrorCodeAutoScalingIAMRolePermissions           ErrorCode = "AUTO_SCALING_IAM_ROLE_PERMISSIONS"
	ErrorCodeCodeDeployResourceCannotBeFound         ErrorCode = "CODEDEPLOY_RESOURCE_CANNOT_BE_FOUND"
	ErrorCodeCustomerApplicationUnhealthy            ErrorCode = "CUSTOMER_APPLICATION_UNHEALTHY"
	ErrorCodeDeploymentGroupMissing                  ErrorCode = "DEPLOYMENT_GROUP_MISSING"
	ErrorCodeECSUpdateError                          ErrorCode = "ECS_UPDATE_ERROR"
	ErrorCodeElasticLoadBalancingInvalid             ErrorCode = "ELASTIC_LOAD_BALANCING_INVALID"
	ErrorCodeELBInvalidInstance                      ErrorCode = "ELB_INVALID_INSTANCE"
	ErrorCodeHealthConstraints                       ErrorCode = "HEALTH_CONSTRAINTS"
	ErrorCodeHealthConstraintsInvalid                ErrorCode = "HEALTH_CONSTRAINTS_INVALID"
	ErrorCodeHookExecutionFailure                    ErrorCode = "HOOK_EXECUTION_FAILURE"
	ErrorCodeIAMRoleMissing                          ErrorCode = "IAM_ROLE_MISSING"
	ErrorCodeIAMRolePermissions                      ErrorCode = "IAM_ROLE_PERMISSIONS"
	ErrorCodeInternalError                           ErrorCode = "INTERNAL_ERROR"
	ErrorCodeInvalidECSService                       ErrorCode = "INVALID_ECS_SERVICE"
	ErrorCodeInvalidLambdaConfiguration              ErrorCode = "INVALID_LAMBDA_CONFIGURATION"
	ErrorCodeInvalidLambdaFunction                   ErrorCode = "INVALID_LAMBDA_FUNCTION"
	ErrorCodeInvalidRevision                         ErrorCode = "INVALID_REVISION"
	ErrorCodeManualStop                              ErrorCode = "MANUAL_STOP"
	ErrorCodeMissingBlueGreenDeploymentConfiguration ErrorCode = "MISSING_BLUE_GREEN_DEPLOYMENT_CONFIGURATION"
	ErrorCodeMissingELBInformation                   ErrorCode = "MISSING_ELB_INFORMATION"
	ErrorCodeMissingGitHubToken                      ErrorCode = "MISSING_GITHUB_TOKEN"
	ErrorCodeNoEC2Subscription                       ErrorCode = "NO_EC2_SUBSCRIPTION"
	ErrorCodeNoInstances                             ErrorCode = "NO_INSTANCES"
	ErrorCodeOverMaxInstances                        ErrorCode = "OVER_MAX_INSTANCES"
	ErrorCodeResourceLimitExceeded                   ErrorCode = "RESOURCE_LIMIT_EXCEEDED"
	ErrorCodeRevisionMissing                         ErrorCode = "REVISION_MISSING"
	ErrorCodeThrottled                               ErrorCode = "THROTTLED"
	ErrorCodeTimeout                                 ErrorCode = "TIMEOUT"
	ErrorCodeCloudFormationStackFailure              ErrorCode = "CLOUDFORMATION_STACK_FAILURE"
)

var errorCodeSet = newEnumSet("ErrorCode",
	ErrorCodeAgentIssue,
	ErrorCodeAlarmActive,
	ErrorCodeApplicationMissing,
	ErrorCodeAutoscalingValidationError,
	ErrorCodeAutoScalingConfiguration,
	ErrorCodeAutoScalingIAMRolePermissions,
	ErrorCodeCodeDeployResourceCannotBeFound,
	ErrorCodeCustomerApplicationUnhealthy,
	ErrorCodeDeploymentGroupMissing,
	ErrorCodeECSUpdateError,
	ErrorCodeElasticLoadBalancingInvalid,
	ErrorCodeELBInvalidInstance,
	ErrorCodeHealthConstraints,
	ErrorCodeHealthConstraintsInvalid,
	ErrorCodeHookExecutionFailure,
	ErrorCodeIAMRoleMissing,
	ErrorCodeIAMRolePermissions,
	ErrorCodeInternalError,
	ErrorCodeInvalidECSService,
	ErrorCodeInvalidLambdaConfiguration,
	ErrorCodeInvalidLambdaFunction,
	ErrorCodeInvalidRevision,
	ErrorCodeManualStop,
	ErrorCodeMissingBlueGreenDeploymentConfiguration,
	ErrorCodeMissingELBInformation,
	ErrorCodeMissingGitHubToken,
	ErrorCodeNoEC2Subscription,
	ErrorCodeNoInstances,
	ErrorCodeOverMaxInstances,
	ErrorCodeResourceLimitExceeded,
	ErrorCodeRevisionMissing,
	ErrorCodeThrottled,
	ErrorCodeTimeout,
	ErrorCodeCloudFormationStackFailure,
)

// Values returns every ErrorCode in declaration order.
func (ErrorCode) Values() []ErrorCode {
	return errorCodeSet.list()
}

func (v ErrorCode) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v ErrorCode) Known() bool {
	return errorCodeSet.known(v)
}

// ParseErrorCode returns the ErrorCode whose wire string is s.
func ParseErrorCode(s string) (ErrorCode, error) {
	return errorCodeSet.parse(s)
}

// FileExistsBehavior controls how the agent treats files already present at a target location.
type FileExistsBehavior string

// Enum values for FileExistsBehavior
const (
	FileExistsBehaviorDisallow  FileExistsBehavior = "DISALLOW"
	FileExistsBehaviorOverwrite FileExistsBehavior = "OVERWRITE"
	FileExistsBehaviorRetain    FileExistsBehavior = "RETAIN"
)

var fileExistsBehaviorSet = newEnumSet("FileExistsBehavior",
	FileExistsBehaviorDisallow,
	FileExistsBehaviorOverwrite,
	FileExistsBehaviorRetain,
)

// Values returns every FileExistsBehavior in declaration order.
func (FileExistsBehavior) Values() []FileExistsBehavior {
	return fileExistsBehaviorSet.list()
}

func (v FileExistsBehavior) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v FileExistsBehavior) Known() bool {
	return fileExistsBehaviorSet.known(v)
}

// ParseFileExistsBehavior returns the FileExistsBehavior whose wire string is s.
func ParseFileExistsBehavior(s string) (FileExistsBehavior, error) {
	return fileExistsBehaviorSet.parse(s)
}

type GreenFleetProvisioningAction string

// Enum values for GreenFleetProvisioningAction
const (
	GreenFleetProvisioningActionDiscoverExisting     GreenFleetProvisioningAction = "DISCOVER_EXISTING"
	GreenFleetProvisioningActionCopyAutoScalingGroup GreenFleetProvisioningAction = "COPY_AUTO_SCALING_GROUP"
)

var greenFleetProvisioningActionSet = newEnumSet("GreenFleetProvisioningAction",
	GreenFleetProvisioningActionDiscoverExisting,
	GreenFleetProvisioningActionCopyAutoScalingGroup,
)

// Values returns every GreenFleetProvisioningAction in declaration order.
func (GreenFleetProvisioningAction) Values() []GreenFleetProvisioningAction {
	return greenFleetProvisioningActionSet.list()
}

func (v GreenFleetProvisioningAction) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v GreenFleetProvisioningAction) Known() bool {
	return greenFleetProvisioningActionSet.known(v)
}

// ParseGreenFleetProvisioningAction returns the GreenFleetProvisioningAction whose wire string is s.
func ParseGreenFleetProvisioningAction(s string) (GreenFleetProvisioningAction, error) {
	return greenFleetProvisioningActionSet.parse(s)
}

// InstanceAction is what happens to original instances after a blue/green deployment.
type InstanceAction string

// Enum values for InstanceAction
const (
	InstanceActionTerminate InstanceAction = "TERMINATE"
	InstanceActionKeepAlive InstanceAction = "KEEP_ALIVE"
)

var instanceActionSet = newEnumSet("InstanceAction",
	InstanceActionTerminate,
	InstanceActionKeepAlive,
)

// Values returns every InstanceAction in declaration order.
func (InstanceAction) Values() []InstanceAction {
	return instanceActionSet.list()
}

func (v InstanceAction) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v InstanceAction) Known() bool {
	return instanceActionSet.known(v)
}

// ParseInstanceAction returns the InstanceAction whose wire string is s.
func ParseInstanceAction(s string) (InstanceAction, error) {
	return instanceActionSet.parse(s)
}

type InstanceStatus string

// Enum values for InstanceStatus
const (
	InstanceStatusPending    InstanceStatus = "Pending"
	InstanceStatusInProgress InstanceStatus = "InProgress"
	InstanceStatusSucceeded  InstanceStatus = "Succeeded"
	InstanceStatusFailed     InstanceStatus = "Failed"
	InstanceStatusSkipped    InstanceStatus = "Skipped"
	InstanceStatusUnknown    InstanceStatus = "Unknown"
	InstanceStatusReady      InstanceStatus = "Ready"
)

var instanceStatusSet = newEnumSet("InstanceStatus",
	InstanceStatusPending,
	InstanceStatusInProgress,
	InstanceStatusSucceeded,
	InstanceStatusFailed,
	InstanceStatusSkipped,
	InstanceStatusUnknown,
	InstanceStatusReady,
)

// Values returns every InstanceStatus in declaration order.
func (InstanceStatus) Values() []InstanceStatus {
	return instanceStatusSet.list()
}

func (v InstanceStatus) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v InstanceStatus) Known() bool {
	return instanceStatusSet.known(v)
}

// ParseInstanceStatus returns the InstanceStatus whose wire string is s.
func ParseInstanceStatus(s string) (InstanceStatus, error) {
	return instanceStatusSet.parse(s)
}

// InstanceType is the blue/green role of an instance.
type InstanceType string

// Enum values for InstanceType
const (
	InstanceTypeBlue  InstanceType = "Blue"
	InstanceTypeGreen InstanceType = "Green"
)

var instanceTypeSet = newEnumSet("InstanceType",
	InstanceTypeBlue,
	InstanceTypeGreen,
)

// Values returns every InstanceType in declaration order.
func (InstanceType) Values() []InstanceType {
	return instanceTypeSet.list()
}

func (v InstanceType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v InstanceType) Known() bool {
	return instanceTypeSet.known(v)
}

// ParseInstanceType returns the InstanceType whose wire string is s.
func ParseInstanceType(s string) (InstanceType, error) {
	return instanceTypeSet.parse(s)
}

type LifecycleErrorCode string

// Enum values for LifecycleErrorCode
const (
	LifecycleErrorCodeSuccess             LifecycleErrorCode = "Success"
	LifecycleErrorCodeScriptMissing       LifecycleErrorCode = "ScriptMissing"
	LifecycleErrorCodeScriptNotExecutable LifecycleErrorCode = "ScriptNotExecutable"
	LifecycleErrorCodeScriptTimedOut      LifecycleErrorCode = "ScriptTimedOut"
	LifecycleErrorCodeScriptFailed        LifecycleErrorCode = "ScriptFailed"
	LifecycleErrorCodeUnknownError        LifecycleErrorCode = "UnknownError"
)

var lifecycleErrorCodeSet = newEnumSet("LifecycleErrorCode",
	LifecycleErrorCodeSuccess,
	LifecycleErrorCodeScriptMissing,
	LifecycleErrorCodeScriptNotExecutable,
	LifecycleErrorCodeScriptTimedOut,
	LifecycleErrorCodeScriptFailed,
	LifecycleErrorCodeUnknownError,
)

// Values returns every LifecycleErrorCode in declaration order.
func (LifecycleErrorCode) Values() []LifecycleErrorCode {
	return lifecycleErrorCodeSet.list()
}

func (v LifecycleErrorCode) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v LifecycleErrorCode) Known() bool {
	return lifecycleErrorCodeSet.known(v)
}

// ParseLifecycleErrorCode returns the LifecycleErrorCode whose wire string is s.
func ParseLifecycleErrorCode(s string) (LifecycleErrorCode, error) {
	return lifecycleErrorCodeSet.parse(s)
}

// LifecycleEventStatus is the result of a lifecycle event hook.
type LifecycleEventStatus string

// Enum values for LifecycleEventStatus
const (
	LifecycleEventStatusPending    LifecycleEventStatus = "Pending"
	LifecycleEventStatusInProgress LifecycleEventStatus = "InProgress"
	LifecycleEventStatusSucceeded  LifecycleEventStatus = "Succeeded"
	LifecycleEventStatusFailed     LifecycleEventStatus = "Failed"
	LifecycleEventStatusSkipped    LifecycleEventStatus = "Skipped"
	LifecycleEventStatusUnknown    LifecycleEventStatus = "Unknown"
)

var lifecycleEventStatusSet = newEnumSet("LifecycleEventStatus",
	LifecycleEventStatusPending,
	LifecycleEventStatusInProgress,
	LifecycleEventStatusSucceeded,
	LifecycleEventStatusFailed,
	LifecycleEventStatusSkipped,
	LifecycleEventStatusUnknown,
)

// Values returns every LifecycleEventStatus in declaration order.
func (LifecycleEventStatus) Values() []LifecycleEventStatus {
	return lifecycleEventStatusSet.list()
}

func (v LifecycleEventStatus) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v LifecycleEventStatus) Known() bool {
	return lifecycleEventStatusSet.known(v)
}

// ParseLifecycleEventStatus returns the LifecycleEventStatus whose wire string is s.
func ParseLifecycleEventStatus(s string) (LifecycleEventStatus, error) {
	return lifecycleEventStatusSet.parse(s)
}

type ListStateFilterAction string

// Enum values for ListStateFilterAction
const (
	ListStateFilterActionInclude ListStateFilterAction = "include"
	ListStateFilterActionExclude ListStateFilterAction = "exclude"
	ListStateFilterActionIgnore  ListStateFilterAction = "ignore"
)

var listStateFilterActionSet = newEnumSet("ListStateFilterAction",
	ListStateFilterActionInclude,
	ListStateFilterActionExclude,
	ListStateFilterActionIgnore,
)

// Values returns every ListStateFilterAction in declaration order.
func (ListStateFilterAction) Values() []ListStateFilterAction {
	return listStateFilterActionSet.list()
}

func (v ListStateFilterAction) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v ListStateFilterAction) Known() bool {
	return listStateFilterActionSet.known(v)
}

// ParseListStateFilterAction returns the ListStateFilterAction whose wire string is s.
func ParseListStateFilterAction(s string) (ListStateFilterAction, error) {
	return listStateFilterActionSet.parse(s)
}

// MinimumHealthyHostsType says whether MinimumHealthyHosts.Value is an instance count or a
// percentage of the fleet.
type MinimumHealthyHostsType string

// Enum values for MinimumHealthyHostsType
const (
	MinimumHealthyHostsTypeHostCount    MinimumHealthyHostsType = "HOST_COUNT"
	MinimumHealthyHostsTypeFleetPercent MinimumHealthyHostsType = "FLEET_PERCENT"
)

var minimumHealthyHostsTypeSet = newEnumSet("MinimumHealthyHostsType",
	MinimumHealthyHostsTypeHostCount,
	MinimumHealthyHostsTypeFleetPercent,
)

// Values returns every MinimumHealthyHostsType in declaration order.
func (MinimumHealthyHostsType) Values() []MinimumHealthyHostsType {
	return minimumHealthyHostsTypeSet.list()
}

func (v MinimumHealthyHostsType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v MinimumHealthyHostsType) Known() bool {
	return minimumHealthyHostsTypeSet.known(v)
}

// ParseMinimumHealthyHostsType returns the MinimumHealthyHostsType whose wire string is s.
func ParseMinimumHealthyHostsType(s string) (MinimumHealthyHostsType, error) {
	return minimumHealthyHostsTypeSet.parse(s)
}

type RegistrationStatus string

// Enum values for RegistrationStatus
const (
	RegistrationStatusRegistered   RegistrationStatus = "Registered"
	RegistrationStatusDeregistered RegistrationStatus = "Deregistered"
)

var registrationStatusSet = newEnumSet("RegistrationStatus",
	RegistrationStatusRegistered,
	RegistrationStatusDeregistered,
)

// Values returns every RegistrationStatus in declaration order.
func (RegistrationStatus) Values() []RegistrationStatus {
	return registrationStatusSet.list()
}

func (v RegistrationStatus) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v RegistrationStatus) Known() bool {
	return registrationStatusSet.known(v)
}

// ParseRegistrationStatus returns the RegistrationStatus whose wire string is s.
func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	return registrationStatusSet.parse(s)
}

// RevisionLocationType is where an application revision is stored.
type RevisionLocationType string

// Enum values for RevisionLocationType
const (
	RevisionLocationTypeS3             RevisionLocationType = "S3"
	RevisionLocationTypeGitHub         RevisionLocationType = "GitHub"
	RevisionLocationTypeString         RevisionLocationType = "String"
	RevisionLocationTypeAppSpecContent RevisionLocationType = "AppSpecContent"
)

var revisionLocationTypeSet = newEnumSet("RevisionLocationType",
	RevisionLocationTypeS3,
	RevisionLocationTypeGitHub,
	RevisionLocationTypeString,
	RevisionLocationTypeAppSpecContent,
)

// Values returns every RevisionLocationType in declaration order.
func (RevisionLocationType) Values() []RevisionLocationType {
	return revisionLocationTypeSet.list()
}

func (v RevisionLocationType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v RevisionLocationType) Known() bool {
	return revisionLocationTypeSet.known(v)
}

// ParseRevisionLocationType returns the RevisionLocationType whose wire string is s.
func ParseRevisionLocationType(s string) (RevisionLocationType, error) {
	return revisionLocationTypeSet.parse(s)
}

type SortOrder string

// Enum values for SortOrder
const (
	SortOrderAscending  SortOrder = "ascending"
	SortOrderDescending SortOrder = "descending"
)

var sortOrderSet = newEnumSet("SortOrder",
	SortOrderAscending,
	SortOrderDescending,
)

// Values returns every SortOrder in declaration order.
func (SortOrder) Values() []SortOrder {
	return sortOrderSet.list()
}

func (v SortOrder) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v SortOrder) Known() bool {
	return sortOrderSet.known(v)
}

// ParseSortOrder returns the SortOrder whose wire string is s.
func ParseSortOrder(s string) (SortOrder, error) {
	return sortOrderSet.parse(s)
}

type StopStatus string

// Enum values for StopStatus
const (
	StopStatusPending   StopStatus = "Pending"
	StopStatusSucceeded StopStatus = "Succeeded"
)

var stopStatusSet = newEnumSet("StopStatus",
	StopStatusPending,
	StopStatusSucceeded,
)

// Values returns every StopStatus in declaration order.
func (StopStatus) Values() []StopStatus {
	return stopStatusSet.list()
}

func (v StopStatus) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v StopStatus) Known() bool {
	return stopStatusSet.known(v)
}

// ParseStopStatus returns the StopStatus whose wire string is s.
func ParseStopStatus(s string) (StopStatus, error) {
	return stopStatusSet.parse(s)
}

// TagFilterType is the match mode of an on-premises TagFilter.
type TagFilterType string

// Enum values for TagFilterType
const (
	TagFilterTypeKeyOnly     TagFilterType = "KEY_ONLY"
	TagFilterTypeValueOnly   TagFilterType = "VALUE_ONLY"
	TagFilterTypeKeyAndValue TagFilterType = "KEY_AND_VALUE"
)

var tagFilterTypeSet = newEnumSet("TagFilterType",
	TagFilterTypeKeyOnly,
	TagFilterTypeValueOnly,
	TagFilterTypeKeyAndValue,
)

// Values returns every TagFilterType in declaration order.
func (TagFilterType) Values() []TagFilterType {
	return tagFilterTypeSet.list()
}

func (v TagFilterType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v TagFilterType) Known() bool {
	return tagFilterTypeSet.known(v)
}

// ParseTagFilterType returns the TagFilterType whose wire string is s.
func ParseTagFilterType(s string) (TagFilterType, error) {
	return tagFilterTypeSet.parse(s)
}

type TargetFilterName string

// Enum values for TargetFilterName
const (
	TargetFilterNameTargetStatus        TargetFilterName = "TargetStatus"
	TargetFilterNameServerInstanceLabel TargetFilterName = "ServerInstanceLabel"
)

var targetFilterNameSet = newEnumSet("TargetFilterName",
	TargetFilterNameTargetStatus,
	TargetFilterNameServerInstanceLabel,
)

// Values returns every TargetFilterName in declaration order.
func (TargetFilterName) Values() []TargetFilterName {
	return targetFilterNameSet.list()
}

func (v TargetFilterName) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v TargetFilterName) Known() bool {
	return targetFilterNameSet.known(v)
}

// ParseTargetFilterName returns the TargetFilterName whose wire string is s.
func ParseTargetFilterName(s string) (TargetFilterName, error) {
	return targetFilterNameSet.parse(s)
}

type TargetLabel string

// Enum values for TargetLabel
const (
	TargetLabelBlue  TargetLabel = "Blue"
	TargetLabelGreen TargetLabel = "Green"
)

var targetLabelSet = newEnumSet("TargetLabel",
	TargetLabelBlue,
	TargetLabelGreen,
)

// Values returns every TargetLabel in declaration order.
func (TargetLabel) Values() []TargetLabel {
	return targetLabelSet.list()
}

func (v TargetLabel) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v TargetLabel) Known() bool {
	return targetLabelSet.known(v)
}

// ParseTargetLabel returns the TargetLabel whose wire string is s.
func ParseTargetLabel(s string) (TargetLabel, error) {
	return targetLabelSet.parse(s)
}

// TargetStatus is the state of one deployment target.
type TargetStatus string

// Enum values for TargetStatus
const (
	TargetStatusPending    TargetStatus = "Pending"
	TargetStatusInProgress TargetStatus = "InProgress"
	TargetStatusSucceeded  TargetStatus = "Succeeded"
	TargetStatusFailed     TargetStatus = "Failed"
	TargetStatusSkipped    TargetStatus = "Skipped"
	TargetStatusUnknown    TargetStatus = "Unknown"
	TargetStatusReady      TargetStatus = "Ready"
)

var targetStatusSet = newEnumSet("TargetStatus",
	TargetStatusPending,
	TargetStatusInProgress,
	TargetStatusSucceeded,
	TargetStatusFailed,
	TargetStatusSkipped,
	TargetStatusUnknown,
	TargetStatusReady,
)

// Values returns every TargetStatus in declaration order.
func (TargetStatus) Values() []TargetStatus {
	return targetStatusSet.list()
}

func (v TargetStatus) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v TargetStatus) Known() bool {
	return targetStatusSet.known(v)
}

// ParseTargetStatus returns the TargetStatus whose wire string is s.
func ParseTargetStatus(s string) (TargetStatus, error) {
	return targetStatusSet.parse(s)
}

// TrafficRoutingType is how traffic is shifted during a Lambda or ECS deployment.
type TrafficRoutingType string

// Enum values for TrafficRoutingType
const (
	TrafficRoutingTypeTimeBasedCanary TrafficRoutingType = "TimeBasedCanary"
	TrafficRoutingTypeTimeBasedLinear TrafficRoutingType = "TimeBasedLinear"
	TrafficRoutingTypeAllAtOnce       TrafficRoutingType = "AllAtOnce"
)

var trafficRoutingTypeSet = newEnumSet("TrafficRoutingType",
	TrafficRoutingTypeTimeBasedCanary,
	TrafficRoutingTypeTimeBasedLinear,
	TrafficRoutingTypeAllAtOnce,
)

// Values returns every TrafficRoutingType in declaration order.
func (TrafficRoutingType) Values() []TrafficRoutingType {
	return trafficRoutingTypeSet.list()
}

func (v TrafficRoutingType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v TrafficRoutingType) Known() bool {
	return trafficRoutingTypeSet.known(v)
}

// ParseTrafficRoutingType returns the TrafficRoutingType whose wire string is s.
func ParseTrafficRoutingType(s string) (TrafficRoutingType, error) {
	return trafficRoutingTypeSet.parse(s)
}

// TriggerEventType is an event that fires a deployment trigger notification.
type TriggerEventType string

// Enum values for TriggerEventType
const (
	TriggerEventTypeDeploymentStart    TriggerEventType = "DeploymentStart"
	TriggerEventTypeDeploymentSuccess  TriggerEventType = "DeploymentSuccess"
	TriggerEventTypeDeploymentFailure  TriggerEventType = "DeploymentFailure"
	TriggerEventTypeDeploymentStop     TriggerEventType = "DeploymentStop"
	TriggerEventTypeDeploymentRollback TriggerEventType = "DeploymentRollback"
	TriggerEventTypeDeploymentReady    TriggerEventType = "DeploymentReady"
	TriggerEventTypeInstanceStart      TriggerEventType = "InstanceStart"
	TriggerEventTypeInstanceSuccess    TriggerEventType = "InstanceSuccess"
	TriggerEventTypeInstanceFailure    TriggerEventType = "InstanceFailure"
	TriggerEventTypeInstanceReady      TriggerEventType = "InstanceReady"
)

var triggerEventTypeSet = newEnumSet("TriggerEventType",
	TriggerEventTypeDeploymentStart,
	TriggerEventTypeDeploymentSuccess,
	TriggerEventTypeDeploymentFailure,
	TriggerEventTypeDeploymentStop,
	TriggerEventTypeDeploymentRollback,
	TriggerEventTypeDeploymentReady,
	TriggerEventTypeInstanceStart,
	TriggerEventTypeInstanceSuccess,
	TriggerEventTypeInstanceFailure,
	TriggerEventTypeInstanceReady,
)

// Values returns every TriggerEventType in declaration order.
func (TriggerEventType) Values() []TriggerEventType {
	return triggerEventTypeSet.list()
}

func (v TriggerEventType) String() string {
	return string(v)
}

// Known reports whether v is one of the declared values.
func (v TriggerEventType) Known() bool {
	return triggerEventTypeSet.known(v)
}

// ParseTriggerEventType returns the TriggerEventType whose wire string is s.
func ParseTriggerEventType(s string) (TriggerEventType, error) {
	return triggerEventTypeSet.parse(s)
}

var enumRegistry = map[string]enumTable{
	"ApplicationRevisionSortBy":    applicationRevisionSortBySet,
	"AutoRollbackEvent":            autoRollbackEventSet,
	"BundleType":                   bundleTypeSet,
	"ComputePlatform":              computePlatformSet,
	"DeploymentCreator":            deploymentCreatorSet,
	"DeploymentOption":             deploymentOptionSet,
	"DeploymentReadyAction":        deploymentReadyActionSet,
	"DeploymentStatus":             deploymentStatusSet,
	"DeploymentTargetType":         deploymentTargetTypeSet,
	"DeploymentType":               deploymentTypeSet,
	"DeploymentWaitType":           deploymentWaitTypeSet,
	"EC2TagFilterType":             ec2TagFilterTypeSet,
	"ErrorCode":                    errorCodeSet,
	"FileExistsBehavior":           fileExistsBehaviorSet,
	"GreenFleetProvisioningAction": greenFleetProvisioningActionSet,
	"InstanceAction":               instanceActionSet,
	"InstanceStatus":               instanceStatusSet,
	"InstanceType":                 instanceTypeSet,
	"LifecycleErrorCode":           lifecycleErrorCodeSet,
	"LifecycleEventStatus":         lifecycleEventStatusSet,
	"ListStateFilterAction":        listStateFilterActionSet,
	"MinimumHealthyHostsType":      minimumHealthyHostsTypeSet,
	"RegistrationStatus":           registrationStatusSet,
	"RevisionLocationType":         revisionLocationTypeSet,
	"SortOrder":                    sortOrderSet,
	"StopStatus":                   stopStatusSet,
	"TagFilterType":                tagFilterTypeSet,
	"TargetFilterName":             targetFilterNameSet,
	"TargetLabel":                  targetLabelSet,
	"TargetStatus":                 targetStatusSet,
	"TrafficRoutingType":           trafficRoutingTypeSet,
	"TriggerEventType":             triggerEventTypeSet,
}
