// Package finsite embeds the finsite engine in a Go program: catalog search,
// facet views, page recommendations and the scripted advisor, without the HTTP server.
//
//	client, _ := finsite.New(ctx, finsite.WithMemory())
//	defer client.Close()
//
//	res := client.Search(ctx, "esg")
//	rec := client.Recommend(ctx, "board-portal")
//
//	adv := client.Advisor()
//	sess, _ := adv.Open(ctx)
//	sess, _ = adv.SelectRole(ctx, sess.ID(), "Board Director")
//
// Sessions live in process memory by default; WithValkey or WithRedis share them
// across processes.
package finsite
