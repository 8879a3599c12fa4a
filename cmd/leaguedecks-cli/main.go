package main

import (
	"leaguedecks-backend/cmd/leaguedecks-cli/commands"
	"leaguedecks-backend/internal/components/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
