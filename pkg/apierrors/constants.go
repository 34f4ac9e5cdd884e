package apierrors

const (
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidDueDate     = "invalidDueDate"
	MsgTaskNotFound       = "taskNotFound"
	MsgUserNotFound       = "userNotFound"
	MsgNoUserSelected     = "noUserSelected"
	MsgFailListTask       = "errorListTask"
	MsgFailListUser       = "errorListUser"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailCompleteTask   = "failCompleteTask"
	MsgStoreTimeout       = "storeTimeout"
	MsgDialogNotFound     = "dialogNotFound"
	MsgDialogClosed       = "dialogClosed"
	MsgAnchorMissing      = "anchorMissing"
	MsgDialogUnavailable  = "dialogUnavailable"
	MsgUnknownFlag        = "unknownFlag"
	MsgFeatureDisabled    = "featureDisabled"
	MsgInvalidTheme       = "invalidTheme"
	MsgFailSaveTheme      = "failSaveTheme"
	MsgFailSaveFlags      = "failSaveFlags"
)
