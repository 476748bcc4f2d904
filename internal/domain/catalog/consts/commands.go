// Package consts contains bot command strings and fixed reply texts
package consts

// Bot commands
const (
	CmdStart       = "/start"
	CmdSearchDrama = "/search_drama"
	CmdAdd         = "/add"
	CmdOngoing     = "/ongoing"
	CmdAddNews     = "/add_news"
	CmdBroadcast   = "/broadcast"
	CmdForceSubOn  = "/fs_on"
	CmdForceSubOff = "/fs_off"
	CmdForceSubDlt = "/fs_dlt"
	CmdRemove      = "/remove"
	CmdCancel      = "/cancel"
	CmdDone        = "/done"
	CmdSkip        = "/skip"
)

// Callback query data
const (
	CallbackDeleteForceSub = "delete_force_sub"
	CallbackRemovePrefix   = "remove_"
)

// Fixed reply texts
const (
	MsgAdminOnly = "this command is for admins only."

	MsgAskChannelLink        = "send me the private channel link:"
	MsgAskOngoingChannelLink = "send me the ongoing drama channel link:"
	MsgAskPosterImage        = "now send the poster image:"
	MsgAskOngoingPosterImage = "now send the poster image for ongoing drama:"
	MsgAskFiles              = "now send the drama files (you can send multiple):"
	MsgAskImageAgain         = "please send an image."
	MsgAskFilesAgain         = "please send files or type /done to finish"
	MsgAskText               = "please send a text message."

	MsgAskNewsTitle   = "send news title:"
	MsgAskNewsContent = "send news content:"
	MsgAskNewsImage   = "send news image or type /skip:"
	MsgNewsPosted     = "✅ news posted successfully!"

	MsgAskForceSubChannel = "send channel id to force subscribe:"
	MsgForceSubEnabled    = "✅ force subscription enabled!"
	MsgForceSubDisabled   = "✅ force subscription disabled!"
	MsgForceSubDeleted    = "✅ force subscription deleted!"

	MsgBroadcastNeedsReply = "please reply to a message to broadcast."
	MsgNoDramasFound       = "no dramas found."
	MsgDramaRemoved        = "✅ drama removed successfully!"
	MsgCancelled           = "cancelled."
	MsgStoreError          = "❌ something went wrong, please try again."

	MsgSearchOnWebsite       = "click below to search dramas on our website:"
	MsgSelectDramaToRemove   = "select drama to remove:"
	MsgClickToDeleteForceSub = "click to delete force subscription:"
)

// Inline keyboard button labels
const (
	BtnSearchOnWebsite = "🔍 search on website"
	BtnDeleteForceSub  = "❌ delete force sub"
)
