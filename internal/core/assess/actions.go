package assess

// actionKey selects an action plan by recommendation and mode
type actionKey struct {
	rec       Recommendation
	protected bool
}

// actionPlans is the fixed lookup table of next steps, ordered as displayed
var actionPlans = map[actionKey][]string{
	{RecommendSkip, false}: {
		"Cancel the meeting and tell attendees why",
		"Share the context in a written update instead",
		"Set a clear owner for any follow-up that still matters",
	},
	{RecommendSkip, true}: {
		"Cancel the meeting, it is not one of your protected rituals",
		"Move anything important onto the next L10 issues list",
		"Share the context in a written update instead",
	},
	{RecommendAsyncFirst, false}: {
		"Write up the context and share it with the group",
		"Collect questions and reactions async for a day or two",
		"Only book a short live session if open questions remain",
	},
	{RecommendAsyncFirst, true}: {
		"Write up the context and share it before any ritual slot",
		"Drop discussion-worthy items onto the IDS list",
		"Only book a live session if async discussion stalls",
	},
	{RecommendShorten, false}: {
		"Cut the duration to the minimum that covers the agenda",
		"Send pre-reads so the live time goes to discussion",
		"End early when the agenda is done",
	},
	{RecommendShorten, true}: {
		"Trim the agenda to what needs live discussion",
		"Send pre-reads so the ritual segments start on time",
		"End early when the agenda is done",
	},
	{RecommendProceed, false}: {
		"Send the agenda to attendees ahead of time",
		"Confirm the DRI will drive the meeting",
		"Capture decisions and owners before closing",
	},
	{RecommendProceed, true}: {
		"Send the agenda to attendees ahead of time",
		"Keep the standard segments and timings for this ritual",
		"Capture decisions and owners before closing",
	},
}

// trimInviteAction is appended for Shorten with a padded invite list
const trimInviteAction = "Mark non-essential attendees as optional"

// PlanActions maps a recommendation to an ordered list of next steps.
// Shorten with more than 3 attendees gains an extra invite-trimming line
// regardless of mode
func PlanActions(in Input, rec Recommendation, protectedMode bool) []string {
	plan := actionPlans[actionKey{rec, protectedMode}]
	out := make([]string, len(plan), len(plan)+1)
	copy(out, plan)
	if rec == RecommendShorten && in.AttendeeCount() > 3 {
		out = append(out, trimInviteAction)
	}
	return out
}
