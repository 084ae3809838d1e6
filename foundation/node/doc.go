/*
Package node implements the process-level actor that owns a blockchain,
a set of known peers, and the gossip and consensus protocols that keep
a set of nodes converging on a single chain.

READING AND NOTES

- Articles
[Transparent Logs for Skeptical Clients](https://research.swtch.com/tlog) - Russ Cox
[Ethereum Mining](https://ethereum.org/en/developers/docs/consensus-mechanisms/pow/mining/) - Ethereum Website

- Books
[Build a blockchain from scratch](https://web3.coach/) - Lukas Lukae
*/
package node
