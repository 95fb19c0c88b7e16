// Package resource exposes typed operations over the policy administration REST
// resources: branches, policy holders, sales agents, insurance policies, GSV/SSV
// tables, loans, users, agent applications, mortality rates and the dashboard.
//
// Every operation is a thin caller of the client request pipeline and returns a
// client.Envelope; deletes report the call's success flag as data.
package resource
