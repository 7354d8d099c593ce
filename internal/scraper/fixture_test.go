package scraper

import "strings"

// statusPage is a trimmed copy of the WLX402 manage-system.sh page: each
// section title is nested in an <h3> and followed by its own table.
const statusPage = `<!DOCTYPE html>
<html>
<head>
<meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
<title>WLX402 - システム</title>
</head>
<body>
<div class="contents">
  <div class="section">
    <h3><span class="title">システム情報</span></h3>
    <table class="info">
      <tr><td class="label">機種</td><td>WLX402</td></tr>
      <tr><td class="label">ファームウェアリビジョン</td><td>Rev.18.00.04</td></tr>
      <tr><td class="label">CPU稼働率</td><td> 23% </td></tr>
      <tr><td class="label">メモリ使用率</td><td>41 %</td></tr>
      <tr><td class="label">筐体内温度</td><td>37.5°C</td></tr>
    </table>
  </div>
  <div class="section">
    <h3><span class="title">無線情報 (2.4GHz)</span></h3>
    <table class="info">
      <tr><td class="label">チャンネル</td><td>6</td></tr>
      <tr><td class="label">接続端末台数</td><td>3台</td></tr>
    </table>
  </div>
  <div class="section">
    <h3><span class="title">無線情報 (5GHz)</span></h3>
    <table class="info">
      <tr><td class="label">チャンネル</td><td>36</td></tr>
      <tr><td class="label">接続端末台数</td><td>12台</td></tr>
    </table>
  </div>
</div>
</body>
</html>
`

// flatPage puts every heading and table side by side under <body>, so the
// client-count row label appears twice inside the same parent element.
const flatPage = `<html><body>
<h3>システム情報</h3>
<table>
<tr><td>CPU稼働率</td><td>5%</td></tr>
<tr><td>メモリ使用率</td><td>60%</td></tr>
<tr><td>筐体内温度</td><td>44°C</td></tr>
</table>
<h3>無線情報 (2.4GHz)</h3>
<table><tr><td>接続端末台数</td><td>7</td></tr></table>
<h3>無線情報 (5GHz)</h3>
<table><tr><td>接続端末台数</td><td>1</td></tr></table>
</body></html>
`

// layoutPage nests every section table inside a frame table, so the outer
// frame cell's text also contains each row label.
const layoutPage = `<html><body>
<table class="layout"><tr><td>
  <h3>システム情報</h3>
  <table class="frame"><tr><td>
    <table>
      <tr><td>CPU稼働率</td><td>88%</td></tr>
      <tr><td>メモリ使用率</td><td>12%</td></tr>
      <tr><td>筐体内温度</td><td>50.25°C</td></tr>
    </table>
  </td></tr></table>
  <h3>無線情報 (2.4GHz)</h3>
  <table class="frame"><tr><td>
    <table><tr><td>接続端末台数</td><td>0</td></tr></table>
  </td></tr></table>
  <h3>無線情報 (5GHz)</h3>
  <table class="frame"><tr><td>
    <table><tr><td>接続端末台数</td><td>4</td></tr></table>
  </td></tr></table>
</td></tr></table>
</body></html>
`

// flatPageRadioOff is flatPage with the 5GHz radio disabled: its table has
// no client-count row.
var flatPageRadioOff = strings.Replace(flatPage,
	"<table><tr><td>接続端末台数</td><td>1</td></tr></table>",
	"<table><tr><td>チャンネル</td><td>無効</td></tr></table>", 1)

// layoutPageRadioOff is layoutPage with the 5GHz client-count row removed.
var layoutPageRadioOff = strings.Replace(layoutPage,
	"<table><tr><td>接続端末台数</td><td>4</td></tr></table>",
	"<table><tr><td>チャンネル</td><td>無効</td></tr></table>", 1)
